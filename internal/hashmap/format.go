package hashmap

import (
	"fmt"
	"strings"
)

// String renders the whole bucket array and the entry count for debugging purposes.
// The format is informative only and may change at any time.
func (table *Table[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString(typeName(table))
	builder.WriteString("(buckets: [")
	for i, b := range table.buckets {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteByte('[')
		for j, e := range b {
			if j > 0 {
				builder.WriteString(", ")
			}
			fmt.Fprintf(&builder, "(key: %#v, value: %#v)", e.key, e.value)
		}
		builder.WriteByte(']')
	}
	fmt.Fprintf(&builder, "], count: %d)", table.count)
	return builder.String()
}

// typeName returns "Table[K, V]" using the dynamic names of the type parameters
func typeName[K comparable, V any](_ *Table[K, V]) string {
	var key K
	var value V
	return fmt.Sprintf("Table[%s, %s]", typeOf(key), typeOf(value))
}

func typeOf(val any) string {
	if val == nil {
		return "any"
	}
	return fmt.Sprintf("%T", val)
}
