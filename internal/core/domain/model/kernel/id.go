package kernel

import (
	"fmt"
	"strconv"

	"dispatch/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is the identifier of an entity. Identifiers are assigned by the store and
// are always positive.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // "42"
type ID struct {
	value int64
}

// NewID wraps a store-assigned identifier. Values below 1 are rejected.
func NewID(value int64) (ID, error) {
	if value < 1 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, 1, "max int64")
	}
	return ID{value: value}, nil
}

// ParseID parses the decimal form of an ID, as it appears in URLs.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not an integer", s))
	}
	return NewID(value)
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two IDs by value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// IsZero reports whether id was never assigned.
func (id ID) IsZero() bool {
	return id.value == 0
}

// Validate returns ErrIDIsNotConstructed for a zero-value ID.
func (id ID) Validate() error {
	if id.value < 1 {
		return ErrIDIsNotConstructed
	}
	return nil
}
