package log

import "time"

// Event represents one step of a configuration load.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// LoadID identifies the load call (UUID). All events of one call share it.
	LoadID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Source is the file path, or empty for stream input.
	Source string `cbor:"4,keyasint,omitempty"`

	// Namespace is the tier a property was parsed in ("system" or "vendor").
	Namespace string `cbor:"5,keyasint,omitempty"`

	// PropertyID is set for property events.
	PropertyID int32 `cbor:"6,keyasint,omitempty"`

	// Count is the number of declarations in the result of a finished load.
	Count int `cbor:"7,keyasint,omitempty"`

	// Messages holds the error messages of rejected properties and failed loads.
	Messages []string `cbor:"8,keyasint,omitempty"`
}

// Category classifies load events.
type Category uint8

const (
	// CategoryLoadStarted marks the beginning of a load call.
	CategoryLoadStarted Category = 0
	// CategoryPropertyAccepted is emitted for each property added to the result.
	CategoryPropertyAccepted Category = 1
	// CategoryPropertyRejected is emitted for each property dropped because of field errors.
	CategoryPropertyRejected Category = 2
	// CategoryLoadFinished marks a successful load.
	CategoryLoadFinished Category = 3
	// CategoryLoadFailed marks a failed load.
	CategoryLoadFailed Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLoadStarted:
		return "LOAD_STARTED"
	case CategoryPropertyAccepted:
		return "PROPERTY_ACCEPTED"
	case CategoryPropertyRejected:
		return "PROPERTY_REJECTED"
	case CategoryLoadFinished:
		return "LOAD_FINISHED"
	case CategoryLoadFailed:
		return "LOAD_FAILED"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name as printed by String (case-sensitive).
func ParseCategory(s string) (Category, bool) {
	for c := CategoryLoadStarted; c <= CategoryLoadFailed; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}
