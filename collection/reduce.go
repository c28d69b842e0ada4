package collection

//
// Reduction
//

// ReduceFunc combines the accumulator with an element of a collection into a new accumulator.
type ReduceFunc[K comparable, V, A any] func(accumulator A, value V, key K) A

// Reduce folds c into a single value by calling combine on each element in traversal order, starting with seed as accumulator.
// If combine is nil, seed is returned.
func Reduce[K comparable, V, A any](c Collection[K, V], combine ReduceFunc[K, V, A], seed A) A {
	accumulator := seed
	if combine == nil {
		return accumulator
	}
	Each(c, func(v V, k K, _ Collection[K, V]) {
		accumulator = combine(accumulator, v, k)
	})
	return accumulator
}

// ReduceWithoutSeed is similar to Reduce but uses the first element of c as seed and starts folding from the second element.
// The second returned value is false when c is empty, in which case there is no result.
func ReduceWithoutSeed[K comparable, V any](c Collection[K, V], combine ReduceFunc[K, V, V]) (result V, found bool) {
	Each(c, func(v V, k K, _ Collection[K, V]) {
		switch {
		case !found:
			result = v
			found = true
		case combine != nil:
			result = combine(result, v, k)
		}
	})
	return
}

// Contains states whether c holds a value equal to target.
func Contains[K comparable, V comparable](c Collection[K, V], target V) bool {
	return Reduce(c, func(found bool, v V, _ K) bool {
		return found || v == target
	}, false)
}

// Every states whether predicate is true for all the elements of c.
// It is true for an empty collection and when predicate is nil.
// Once predicate has been false, it is not called on the remaining elements.
func Every[K comparable, V any](c Collection[K, V], predicate PredicateFunc[K, V]) bool {
	if predicate == nil {
		return true
	}
	return Reduce(c, func(all bool, v V, k K) bool {
		return all && predicate(v, k, c)
	}, true)
}

// Some states whether predicate is true for at least one element of c. It is false for an empty collection.
// If predicate is nil, values are tested for truthiness (see value.IsTruthy).
// Once predicate has been true, it is not called on the remaining elements.
func Some[K comparable, V any](c Collection[K, V], predicate PredicateFunc[K, V]) bool {
	predicate = orTruthy(predicate)
	return Reduce(c, func(found bool, v V, k K) bool {
		return found || predicate(v, k, c)
	}, false)
}
