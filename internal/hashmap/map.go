package hashmap

import "fmt"

// Map represents the interface every table flavour provided by this module has to implement
type Map[K comparable, V any] interface {
	fmt.Stringer

	// Size returns the amount of stored key-value pairs
	Size() int

	// Capacity returns the fixed amount of buckets
	Capacity() int

	// Has returns whether a value is assigned to the given key
	Has(key K) bool

	// Lookup returns the value assigned to the given key and a boolean indicating if the key is present at all
	Lookup(key K) (V, bool)

	// Get returns the value assigned to the given key.
	// May be the type's zero value if it was not set before; use Has or Lookup for this information.
	Get(key K) V

	// Update assigns the value to the given key and returns the value it replaced, if any
	Update(key K, value V) (V, bool)

	// Set sets a key-value pair
	Set(key K, value V)

	// Remove deletes the value assigned to the given key and returns it, if any
	Remove(key K) (V, bool)

	// Unset deletes the value assigned to given key
	Unset(key K)

	// Assign behaves like Update if present is true and like Remove otherwise
	Assign(key K, value V, present bool) (V, bool)

	// Clear removes every key-value pair while keeping the capacity
	Clear()

	// Range calls fn for every key-value pair until fn returns false.
	// The iteration order is unspecified.
	Range(fn func(key K, value V) bool)

	// Stats returns a snapshot of the bucket distribution
	Stats() Stats
}
