package collection

//
// Iteration engine
//

// IteratorFunc is called on each element of a collection with its value, its key (index for sequences) and the collection itself.
type IteratorFunc[K comparable, V any] func(value V, key K, collection Collection[K, V])

// Each calls iterator exactly once per element of c, in traversal order: ascending index order for sequences and
// insertion order for mappings. Nothing happens if c is undefined (e.g. nil) or if iterator is nil.
func Each[K comparable, V any](c Collection[K, V], iterator IteratorFunc[K, V]) {
	if isUndefined(c) || iterator == nil {
		return
	}
	for k, v := range c.All() {
		iterator(v, k, c)
	}
}

// EachValue is similar to Each but the iterator is only given values.
func EachValue[K comparable, V any](c Collection[K, V], iterator func(V)) {
	if iterator == nil {
		return
	}
	Each(c, func(value V, _ K, _ Collection[K, V]) {
		iterator(value)
	})
}
