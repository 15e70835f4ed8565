package threadsafe

import (
	"sync"

	"github.com/skybi/hashtable/internal/hashmap"
)

// Table guards a hashmap.Table with a RWMutex in order to make it thread safe
type Table[K comparable, V any] struct {
	mtx        sync.RWMutex
	underlying *hashmap.Table[K, V]
}

var _ hashmap.Map[int, any] = (*Table[int, any])(nil)

// NewTable creates a new thread safe table; see hashmap.New for the parameters
func NewTable[K comparable, V any](capacity int, hash hashmap.HashFunc[K], opts ...hashmap.Option) (*Table[K, V], error) {
	underlying, err := hashmap.New[K, V](capacity, hash, opts...)
	if err != nil {
		return nil, err
	}
	return Wrap(underlying), nil
}

// Wrap guards an existing table.
// The table must not be used directly afterwards.
func Wrap[K comparable, V any](table *hashmap.Table[K, V]) *Table[K, V] {
	return &Table[K, V]{underlying: table}
}

// Size returns the amount of stored key-value pairs
func (safe *Table[K, V]) Size() int {
	safe.mtx.RLock()
	defer safe.mtx.RUnlock()
	return safe.underlying.Size()
}

// Capacity returns the fixed amount of buckets
func (safe *Table[K, V]) Capacity() int {
	safe.mtx.RLock()
	defer safe.mtx.RUnlock()
	return safe.underlying.Capacity()
}

// Has returns whether a value is assigned to the given key
func (safe *Table[K, V]) Has(key K) bool {
	_, ok := safe.Lookup(key)
	return ok
}

// Lookup returns the value assigned to the given key and a boolean indicating if the key is present at all
func (safe *Table[K, V]) Lookup(key K) (V, bool) {
	safe.mtx.RLock()
	defer safe.mtx.RUnlock()
	return safe.underlying.Lookup(key)
}

// Get returns the value assigned to the given key.
// This value will be the zero value for non-existing keys. Use Lookup if this information is important.
func (safe *Table[K, V]) Get(key K) V {
	val, _ := safe.Lookup(key)
	return val
}

// Update assigns the value to the given key and returns the value it replaced, if any
func (safe *Table[K, V]) Update(key K, value V) (V, bool) {
	safe.mtx.Lock()
	defer safe.mtx.Unlock()
	return safe.underlying.Update(key, value)
}

// Set sets the value of a specific key
func (safe *Table[K, V]) Set(key K, value V) {
	safe.Update(key, value)
}

// Remove deletes the value assigned to the given key and returns it, if any
func (safe *Table[K, V]) Remove(key K) (V, bool) {
	safe.mtx.Lock()
	defer safe.mtx.Unlock()
	return safe.underlying.Remove(key)
}

// Unset removes the value of a specific key
func (safe *Table[K, V]) Unset(key K) {
	safe.Remove(key)
}

// Assign behaves like Update if present is true and like Remove otherwise
func (safe *Table[K, V]) Assign(key K, value V, present bool) (V, bool) {
	safe.mtx.Lock()
	defer safe.mtx.Unlock()
	return safe.underlying.Assign(key, value, present)
}

// Clear removes every key-value pair while keeping the capacity
func (safe *Table[K, V]) Clear() {
	safe.mtx.Lock()
	defer safe.mtx.Unlock()
	safe.underlying.Clear()
}

// Range calls fn for every key-value pair until fn returns false.
// The read lock is held during the whole iteration, so fn must not write to this table.
func (safe *Table[K, V]) Range(fn func(key K, value V) bool) {
	safe.mtx.RLock()
	defer safe.mtx.RUnlock()
	safe.underlying.Range(fn)
}

// Stats returns a snapshot of the bucket distribution
func (safe *Table[K, V]) Stats() hashmap.Stats {
	safe.mtx.RLock()
	defer safe.mtx.RUnlock()
	return safe.underlying.Stats()
}

func (safe *Table[K, V]) String() string {
	safe.mtx.RLock()
	defer safe.mtx.RUnlock()
	return safe.underlying.String()
}

// Manipulate allows a thread safe direct manipulation of the underlying table by wrapping the given function in a
// lock of the write mutex.
// The table must not be retained by action.
func (safe *Table[K, V]) Manipulate(action func(underlying *hashmap.Table[K, V])) {
	safe.mtx.Lock()
	defer safe.mtx.Unlock()
	action(safe.underlying)
}
