package threadsafe

import (
	"fmt"
	"time"

	"github.com/skybi/hashtable/internal/hashmap"
	"github.com/skybi/hashtable/internal/task"
)

type expiringEntry[T any] struct {
	raw      T
	inserted time.Time
}

// ExpiringTable implements the hashmap.Map interface and wraps a thread safe Table in order to implement value
// expiration
type ExpiringTable[K comparable, V any] struct {
	table       *Table[K, *expiringEntry[V]]
	lifetime    time.Duration
	cleanupTask *task.RepeatingTask
	now         func() time.Time
}

var _ hashmap.Map[int, any] = (*ExpiringTable[int, any])(nil)

// NewExpiringTable creates a new expiring table whose values exist for a specific lifetime.
// Expired values will not be removed before ScheduleCleanupTask is called.
// Until then this table behaves exactly like a Table.
func NewExpiringTable[K comparable, V any](capacity int, hash hashmap.HashFunc[K], lifetime time.Duration, opts ...hashmap.Option) (*ExpiringTable[K, V], error) {
	table, err := NewTable[K, *expiringEntry[V]](capacity, hash, opts...)
	if err != nil {
		return nil, err
	}
	return &ExpiringTable[K, V]{
		table:    table,
		lifetime: lifetime,
		now:      time.Now,
	}, nil
}

// ScheduleCleanupTask schedules the task that cleans up expired values in a specific interval.
// A call to StopCleanupTask as soon as the table is no longer needed is highly recommended because it would not be
// garbage collected otherwise.
func (exp *ExpiringTable[K, V]) ScheduleCleanupTask(tick time.Duration) {
	if exp.cleanupTask != nil {
		return
	}
	exp.cleanupTask = task.NewRepeating(func() {
		exp.Cleanup()
	}, tick)
	exp.cleanupTask.Start()
}

// StopCleanupTask stops the cleanup task
func (exp *ExpiringTable[K, V]) StopCleanupTask() {
	if exp.cleanupTask == nil {
		return
	}
	exp.cleanupTask.Stop(false)
	exp.cleanupTask = nil
}

// Cleanup removes every expired value and returns how many were removed
func (exp *ExpiringTable[K, V]) Cleanup() int {
	removed := 0
	exp.table.Manipulate(func(raw *hashmap.Table[K, *expiringEntry[V]]) {
		now := exp.now()
		var expired []K
		raw.Range(func(key K, val *expiringEntry[V]) bool {
			if now.Sub(val.inserted) > exp.lifetime {
				expired = append(expired, key)
			}
			return true
		})
		for _, key := range expired {
			raw.Unset(key)
		}
		removed = len(expired)
	})
	return removed
}

// Size returns the amount of stored key-value pairs
func (exp *ExpiringTable[K, V]) Size() int {
	return exp.table.Size()
}

// Capacity returns the fixed amount of buckets
func (exp *ExpiringTable[K, V]) Capacity() int {
	return exp.table.Capacity()
}

// Has returns whether a value is assigned to the given key
func (exp *ExpiringTable[K, V]) Has(key K) bool {
	return exp.table.Has(key)
}

// Lookup returns the value assigned to the given key and a boolean indicating if the key is present at all
func (exp *ExpiringTable[K, V]) Lookup(key K) (V, bool) {
	return unwrap(exp.table.Lookup(key))
}

// Get returns the value assigned to the given key.
// Will be the zero value if it was not set using Set before.
func (exp *ExpiringTable[K, V]) Get(key K) V {
	val, _ := exp.Lookup(key)
	return val
}

// Update assigns the value to the given key and resets its lifetime
func (exp *ExpiringTable[K, V]) Update(key K, value V) (V, bool) {
	return unwrap(exp.table.Update(key, exp.wrap(value)))
}

// Set sets a key-value pair
func (exp *ExpiringTable[K, V]) Set(key K, value V) {
	exp.Update(key, value)
}

// Remove deletes the value assigned to the given key and returns it, if any
func (exp *ExpiringTable[K, V]) Remove(key K) (V, bool) {
	return unwrap(exp.table.Remove(key))
}

// Unset deletes the value assigned to given key
func (exp *ExpiringTable[K, V]) Unset(key K) {
	exp.table.Unset(key)
}

// Assign behaves like Update if present is true and like Remove otherwise
func (exp *ExpiringTable[K, V]) Assign(key K, value V, present bool) (V, bool) {
	if present {
		return exp.Update(key, value)
	}
	return exp.Remove(key)
}

// Clear clears the whole table
func (exp *ExpiringTable[K, V]) Clear() {
	exp.table.Clear()
}

// Range calls fn for every key-value pair until fn returns false
func (exp *ExpiringTable[K, V]) Range(fn func(key K, value V) bool) {
	exp.table.Range(func(key K, val *expiringEntry[V]) bool {
		return fn(key, val.raw)
	})
}

// Stats returns a snapshot of the bucket distribution
func (exp *ExpiringTable[K, V]) Stats() hashmap.Stats {
	return exp.table.Stats()
}

func (exp *ExpiringTable[K, V]) String() string {
	return fmt.Sprintf("ExpiringTable(lifetime: %s, size: %d)", exp.lifetime, exp.Size())
}

func (exp *ExpiringTable[K, V]) wrap(value V) *expiringEntry[V] {
	return &expiringEntry[V]{
		raw:      value,
		inserted: exp.now(),
	}
}

func unwrap[V any](val *expiringEntry[V], ok bool) (V, bool) {
	if !ok || val == nil {
		var zero V
		return zero, false
	}
	return val.raw, true
}
