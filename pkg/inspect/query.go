package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
)

// Query errors.
var (
	ErrEmptyQuery    = errors.New("empty query")
	ErrInvalidQuery  = errors.New("invalid query format")
	ErrInvalidNumber = errors.New("invalid numeric property id")
	ErrUnknownName   = errors.New("unknown property name")
)

// Query selects one property.
//
// Supported formats:
//   - "0x11100100" or "286261504" - numeric id
//   - "VehicleProperty::INFO_VIN" - constant reference
//   - "INFO_VIN" - bare name, looked up in the property tables
type Query struct {
	// Tag is the type tag of a constant reference, empty otherwise.
	Tag string

	// Name is the constant name, empty for numeric queries.
	Name string

	// ID is the numeric id when HasID is true.
	ID int32

	// HasID indicates a numeric query.
	HasID bool

	// Raw stores the original input string.
	Raw string
}

// ParseQuery parses a property selector. Numeric values can be decimal or
// hex (0x prefix).
func ParseQuery(input string) (*Query, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyQuery
	}

	q := &Query{Raw: input}

	if isNumeric(input) {
		id, err := parseID(input)
		if err != nil {
			return nil, err
		}
		q.ID = id
		q.HasID = true
		return q, nil
	}

	if strings.Contains(input, constants.Delimiter) {
		ref, _ := constants.ParseRef(input)
		if ref.Type == "" || ref.Name == "" {
			return nil, ErrInvalidQuery
		}
		q.Tag = ref.Type
		q.Name = ref.Name
		return q, nil
	}

	if strings.ContainsAny(input, " \t/:") {
		return nil, ErrInvalidQuery
	}
	q.Name = strings.ToUpper(input)
	return q, nil
}

// Resolver resolves constant references. *constants.Registry implements it.
type Resolver interface {
	Resolve(tag, name string) (int64, error)
}

// Resolve returns the property id the query selects.
func (q *Query) Resolve(r Resolver) (int32, error) {
	if q.HasID {
		return q.ID, nil
	}
	if q.Tag != "" {
		v, err := r.Resolve(q.Tag, q.Name)
		if err != nil {
			return 0, err
		}
		return int32(v), nil
	}
	for _, tag := range []string{PropertyTag, VendorPropertyTag} {
		if v, err := r.Resolve(tag, q.Name); err == nil {
			return int32(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownName, q.Name)
}

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return true
	}
	return s[0] >= '0' && s[0] <= '9'
}

// parseID parses a decimal or hex property id. Values up to 0xffffffff are
// accepted and reinterpreted as int32.
func parseID(s string) (int32, error) {
	var (
		v   uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return int32(uint32(v)), nil
}
