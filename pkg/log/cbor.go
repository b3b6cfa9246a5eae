package log

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// ErrUnknownCategory is returned when a decoded event carries a category
// this package does not define.
var ErrUnknownCategory = errors.New("unknown event category")

// Event logs are append-only and written by one version of this package, so
// the decoder is strict: duplicate keys and unknown categories are corruption.
var (
	logEncMode cbor.EncMode
	logDecMode cbor.DecMode
)

func init() {
	var err error

	logEncMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("event log encoder mode: %v", err))
	}

	logDecMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("event log decoder mode: %v", err))
	}
}

// EncodeEvent encodes an Event to CBOR bytes.
func EncodeEvent(event Event) ([]byte, error) {
	return logEncMode.Marshal(event)
}

// DecodeEvent decodes CBOR bytes into an Event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := logDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	if err := validate(event); err != nil {
		return Event{}, err
	}
	return event, nil
}

func newEncoder(w io.Writer) *cbor.Encoder {
	return logEncMode.NewEncoder(w)
}

func newDecoder(r io.Reader) *cbor.Decoder {
	return logDecMode.NewDecoder(r)
}

func validate(event Event) error {
	if event.Category > CategoryLoadFailed {
		return fmt.Errorf("%w: %d (load %s)", ErrUnknownCategory, event.Category, event.LoadID)
	}
	return nil
}
