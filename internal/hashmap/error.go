package hashmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is matched by every error returned because of a non-positive table capacity
	ErrInvalidCapacity = errors.New("the table capacity has to be strictly positive")

	// ErrNilHashFunc is returned if a table is constructed without a hash function
	ErrNilHashFunc = errors.New("a hash function is required")
)

// CapacityError represents a rejected table capacity
type CapacityError struct {
	Capacity int
}

func (err *CapacityError) Error() string {
	return fmt.Sprintf("%s (got %d)", ErrInvalidCapacity.Error(), err.Capacity)
}

// Unwrap makes errors.Is(err, ErrInvalidCapacity) hold
func (err *CapacityError) Unwrap() error {
	return ErrInvalidCapacity
}
