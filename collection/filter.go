package collection

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ARM-software/golang-underbar/value"
)

//
// Lookup and filtering
//

// PredicateFunc is a truth test on an element of a collection.
type PredicateFunc[K comparable, V any] func(value V, key K, collection Collection[K, V]) bool

// Truthy returns the predicate testing the truthiness of the values themselves (see value.IsTruthy).
func Truthy[K comparable, V any]() PredicateFunc[K, V] {
	return func(v V, _ K, _ Collection[K, V]) bool {
		return value.IsTruthy(v)
	}
}

// Negate returns a predicate returning the opposite of predicate.
func Negate[K comparable, V any](predicate PredicateFunc[K, V]) PredicateFunc[K, V] {
	predicate = orTruthy(predicate)
	return func(v V, k K, c Collection[K, V]) bool {
		return !predicate(v, k, c)
	}
}

func orTruthy[K comparable, V any](predicate PredicateFunc[K, V]) PredicateFunc[K, V] {
	if predicate == nil {
		return Truthy[K, V]()
	}
	return predicate
}

// IndexOf returns the index of the first element of s equal to target, or NotFound.
func IndexOf[V comparable](s Sequence[V], target V) int {
	result := NotFound
	Each(s, func(v V, i int, _ Collection[int, V]) {
		if result == NotFound && v == target {
			result = i
		}
	})
	return result
}

// Filter returns the values of c for which predicate is true, in traversal order.
// If predicate is nil, values are tested for truthiness.
func Filter[K comparable, V any](c Collection[K, V], predicate PredicateFunc[K, V]) Sequence[V] {
	predicate = orTruthy(predicate)
	result := make(Sequence[V], 0, length(c))
	Each(c, func(v V, k K, col Collection[K, V]) {
		if predicate(v, k, col) {
			result = append(result, v)
		}
	})
	return result
}

// Reject is the opposite of Filter and returns the values of c for which predicate is false.
// Filter and Reject partition c: every value ends up in exactly one of them.
func Reject[K comparable, V any](c Collection[K, V], predicate PredicateFunc[K, V]) Sequence[V] {
	return Filter(c, Negate(predicate))
}

// Uniq returns the distinct values of s in order of first occurrence.
func Uniq[V comparable](s Sequence[V]) Sequence[V] {
	seen := mapset.NewThreadUnsafeSetWithSize[V](len(s))
	return Filter(s, func(v V, _ int, _ Collection[int, V]) bool {
		return seen.Add(v)
	})
}
