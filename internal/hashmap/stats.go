package hashmap

import "github.com/rs/zerolog"

// Stats describes how the entries of a table are distributed over its buckets
type Stats struct {
	Capacity     int
	Count        int
	EmptyBuckets int
	LongestChain int
}

var _ zerolog.LogObjectMarshaler = Stats{}

// LoadFactor returns the ratio of stored entries to buckets
func (stats Stats) LoadFactor() float64 {
	if stats.Capacity == 0 {
		return 0
	}
	return float64(stats.Count) / float64(stats.Capacity)
}

// MarshalZerologObject allows passing stats to zerolog's Object method
func (stats Stats) MarshalZerologObject(event *zerolog.Event) {
	event.Int("capacity", stats.Capacity).
		Int("count", stats.Count).
		Int("empty_buckets", stats.EmptyBuckets).
		Int("longest_chain", stats.LongestChain).
		Float64("load_factor", stats.LoadFactor())
}

// Stats returns a snapshot of the bucket distribution
func (table *Table[K, V]) Stats() Stats {
	stats := Stats{
		Capacity: len(table.buckets),
		Count:    table.count,
	}
	for _, b := range table.buckets {
		if len(b) == 0 {
			stats.EmptyBuckets++
		}
		if len(b) > stats.LongestChain {
			stats.LongestChain = len(b)
		}
	}
	return stats
}
