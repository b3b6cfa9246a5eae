package snapshot

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// Version is the current version of the snapshot format.
const Version = 1

// ErrVersion is returned when decoding a snapshot of another format version.
var ErrVersion = errors.New("unsupported snapshot version")

// Snapshot is a compiled property table together with its provenance.
type Snapshot struct {
	// Version is the snapshot format version.
	Version int `cbor:"1,keyasint"`

	// CompiledAt is when the table was compiled.
	CompiledAt time.Time `cbor:"2,keyasint"`

	// LoadID identifies the compilation that produced the table.
	LoadID string `cbor:"3,keyasint,omitempty"`

	// SourceDigest is the Digest of the source document.
	SourceDigest string `cbor:"4,keyasint"`

	// Declarations are ordered by property id.
	Declarations []vehicle.ConfigDeclaration `cbor:"5,keyasint,omitempty"`
}

// New creates a snapshot of table compiled from src.
func New(table vehicle.Table, src []byte, loadID string) *Snapshot {
	return &Snapshot{
		Version:      Version,
		CompiledAt:   time.Now(),
		LoadID:       loadID,
		SourceDigest: Digest(src),
		Declarations: table.Declarations(),
	}
}

// Table rebuilds the property table.
func (s *Snapshot) Table() vehicle.Table {
	return vehicle.TableOf(s.Declarations...)
}

// Matches reports whether the snapshot was compiled from src.
func (s *Snapshot) Matches(src []byte) bool {
	return s.SourceDigest == Digest(src)
}

// Digest returns the hex-encoded BLAKE2b-256 hash of src.
func Digest(src []byte) string {
	sum := blake2b.Sum256(src)
	return hex.EncodeToString(sum[:])
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// Encode serializes s.
func Encode(s *Snapshot) ([]byte, error) {
	return encMode.Marshal(s)
}

// Decode parses a serialized snapshot.
func Decode(data []byte) (*Snapshot, error) {
	s := &Snapshot{}
	if err := decMode.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	return s, nil
}
