package hashmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// HashFunc produces the hash code of a key.
// It has to be deterministic: equal keys must always produce equal codes. Negative codes are allowed.
type HashFunc[K any] func(key K) int64

// String hashes strings using xxhash64
func String(key string) int64 {
	return int64(xxhash.Sum64String(key))
}

// Bytes hashes byte slices using xxhash64
func Bytes(key []byte) int64 {
	return int64(xxhash.Sum64(key))
}

// Uint64 hashes unsigned integers by running their little endian representation through xxhash64
func Uint64(key uint64) int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return int64(xxhash.Sum64(buf[:]))
}

// Int64 hashes signed integers the same way as Uint64
func Int64(key int64) int64 {
	return Uint64(uint64(key))
}

// Int hashes platform integers the same way as Uint64
func Int(key int) int64 {
	return Uint64(uint64(key))
}

// UUID hashes UUIDs using xxhash64 on their raw 16 bytes
func UUID(key uuid.UUID) int64 {
	return int64(xxhash.Sum64(key[:]))
}
