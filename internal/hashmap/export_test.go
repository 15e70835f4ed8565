package hashmap

// IndexFor exposes the bucket index computation to the external test package
func (table *Table[K, V]) IndexFor(key K) int {
	return table.indexFor(key)
}
