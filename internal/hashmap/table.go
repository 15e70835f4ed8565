package hashmap

import "github.com/rs/zerolog"

type entry[K comparable, V any] struct {
	key   K
	value V
}

type bucket[K comparable, V any] []entry[K, V]

// find returns the position of the given key inside the bucket or -1
func (b bucket[K, V]) find(key K) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}
	return -1
}

// Table implements the Map interface using a fixed amount of buckets and chaining inside each bucket.
// The capacity never changes after construction, so callers have to choose it according to the expected amount of
// entries; chains grow without bound otherwise.
// A Table is not safe for concurrent use; wrap it using the threadsafe package if that is required.
type Table[K comparable, V any] struct {
	buckets []bucket[K, V]
	count   int
	hash    HashFunc[K]
	logger  zerolog.Logger
}

var _ Map[int, any] = (*Table[int, any])(nil)

// Option configures optional table behaviour
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger makes the table log its construction (debug) and chain growth (trace) using the given logger
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// New creates a new table with the given amount of buckets.
// A non-positive capacity is rejected with a *CapacityError; there is no fallback capacity.
func New[K comparable, V any](capacity int, hash HashFunc[K], opts ...Option) (*Table[K, V], error) {
	if capacity <= 0 {
		return nil, &CapacityError{Capacity: capacity}
	}
	if hash == nil {
		return nil, ErrNilHashFunc
	}

	cfg := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	table := &Table[K, V]{
		buckets: make([]bucket[K, V], capacity),
		hash:    hash,
		logger:  cfg.logger,
	}
	table.logger.Debug().Int("capacity", capacity).Msg("created hash table")
	return table, nil
}

// MustNew works like New but panics if the table could not be created
func MustNew[K comparable, V any](capacity int, hash HashFunc[K], opts ...Option) *Table[K, V] {
	table, err := New[K, V](capacity, hash, opts...)
	if err != nil {
		panic(err)
	}
	return table
}

// indexFor maps the hash of the given key into [0, capacity).
// Hash codes may be negative, so the remainder is shifted into range instead of using it directly.
func (table *Table[K, V]) indexFor(key K) int {
	capacity := int64(len(table.buckets))
	index := table.hash(key) % capacity
	if index < 0 {
		index += capacity
	}
	return int(index)
}

// Size returns the amount of stored key-value pairs
func (table *Table[K, V]) Size() int {
	return table.count
}

// Capacity returns the fixed amount of buckets
func (table *Table[K, V]) Capacity() int {
	return len(table.buckets)
}

// Has returns whether a value is assigned to the given key
func (table *Table[K, V]) Has(key K) bool {
	_, ok := table.Lookup(key)
	return ok
}

// Lookup returns the value assigned to the given key and a boolean indicating if the key is present at all
func (table *Table[K, V]) Lookup(key K) (V, bool) {
	b := table.buckets[table.indexFor(key)]
	if i := b.find(key); i >= 0 {
		return b[i].value, true
	}
	var zero V
	return zero, false
}

// Get returns the value assigned to the given key.
// May be the type's zero value if it was not set before; use Has or Lookup for this information.
func (table *Table[K, V]) Get(key K) V {
	val, _ := table.Lookup(key)
	return val
}

// Update assigns the value to the given key.
// If the key was already present, its value is replaced in place and the previous one is returned together with true.
func (table *Table[K, V]) Update(key K, value V) (V, bool) {
	index := table.indexFor(key)
	b := table.buckets[index]
	if i := b.find(key); i >= 0 {
		previous := b[i].value
		b[i].value = value
		return previous, true
	}

	if len(b) > 0 {
		table.logger.Trace().Int("bucket", index).Int("chain", len(b)+1).Msg("bucket collision")
	}
	table.buckets[index] = append(b, entry[K, V]{key: key, value: value})
	table.count++

	var zero V
	return zero, false
}

// Set sets a key-value pair
func (table *Table[K, V]) Set(key K, value V) {
	table.Update(key, value)
}

// Remove deletes the value assigned to the given key and returns it together with true.
// The order of the remaining entries inside the bucket is not preserved.
func (table *Table[K, V]) Remove(key K) (V, bool) {
	var zero V

	index := table.indexFor(key)
	b := table.buckets[index]
	i := b.find(key)
	if i < 0 {
		return zero, false
	}

	removed := b[i].value
	last := len(b) - 1
	b[i] = b[last]
	b[last] = entry[K, V]{}
	if last == 0 {
		table.buckets[index] = nil
	} else {
		table.buckets[index] = b[:last]
	}
	table.count--
	return removed, true
}

// Unset deletes the value assigned to given key
func (table *Table[K, V]) Unset(key K) {
	table.Remove(key)
}

// Assign behaves like Update if present is true and like Remove otherwise.
// Its last two parameters match the results of Lookup, which allows mirroring a key including its absence.
func (table *Table[K, V]) Assign(key K, value V, present bool) (V, bool) {
	if present {
		return table.Update(key, value)
	}
	return table.Remove(key)
}

// Clear removes every key-value pair while keeping the capacity
func (table *Table[K, V]) Clear() {
	table.buckets = make([]bucket[K, V], len(table.buckets))
	table.count = 0
}

// Range calls fn for every key-value pair in bucket order until fn returns false.
// The table must not be mutated by fn.
func (table *Table[K, V]) Range(fn func(key K, value V) bool) {
	for _, b := range table.buckets {
		for _, e := range b {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}
