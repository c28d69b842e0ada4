package collection

import (
	"math/rand/v2"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

//
// Slicing
//

// First returns up to n values from the start of s.
func First[V any](s Sequence[V], n int) Sequence[V] {
	n = clamp(n, len(s))
	return Filter(s, func(_ V, i int, _ Collection[int, V]) bool {
		return i < n
	})
}

// Last returns up to n values from the end of s.
func Last[V any](s Sequence[V], n int) Sequence[V] {
	start := len(s) - clamp(n, len(s))
	return Filter(s, func(_ V, i int, _ Collection[int, V]) bool {
		return i >= start
	})
}

// FirstValue returns the first value of s, if any.
func FirstValue[V any](s Sequence[V]) (first V, found bool) {
	if len(s) == 0 {
		return
	}
	return s[0], true
}

// LastValue returns the last value of s, if any.
func LastValue[V any](s Sequence[V]) (last V, found bool) {
	if len(s) == 0 {
		return
	}
	return s[len(s)-1], true
}

func clamp(n, size int) int {
	return max(0, min(n, size))
}

// Shuffle returns a shuffled copy of s using the Fisher-Yates algorithm. s is left unchanged.
func Shuffle[V any](s Sequence[V]) Sequence[V] {
	shuffled := Map(s, IdentityFunc[int, V]())
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Flatten flattens nested slices or arrays, at any depth, into a single sequence.
func Flatten(nested ...any) Sequence[any] {
	flattened := Sequence[any]{}
	EachValue(Sequence[any](nested), func(item any) {
		flattened = appendFlattened(flattened, reflect.ValueOf(item), item)
	})
	return flattened
}

func appendFlattened(flattened Sequence[any], v reflect.Value, item any) Sequence[any] {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			element := v.Index(i)
			var elementItem any
			if element.CanInterface() {
				elementItem = element.Interface()
			}
			if element.Kind() == reflect.Interface {
				element = element.Elem()
			}
			flattened = appendFlattened(flattened, element, elementItem)
		}
		return flattened
	default:
		return append(flattened, item)
	}
}

// FlattenSequences concatenates sequences, a single level deep.
func FlattenSequences[V any](sequences ...Sequence[V]) Sequence[V] {
	return Reduce(Sequence[Sequence[V]](sequences), func(flattened Sequence[V], s Sequence[V], _ int) Sequence[V] {
		return append(flattened, s...)
	}, Sequence[V]{})
}

//
// Set operations
//

// Intersection returns the distinct values of first which are present in every other sequence, in order of first occurrence in first.
func Intersection[V comparable](first Sequence[V], others ...Sequence[V]) Sequence[V] {
	sets := Map(Sequence[Sequence[V]](others), func(s Sequence[V], _ int, _ Collection[int, Sequence[V]]) mapset.Set[V] {
		return mapset.NewThreadUnsafeSet[V](s...)
	})
	return Filter(Uniq(first), func(v V, _ int, _ Collection[int, V]) bool {
		return Every(sets, func(set mapset.Set[V], _ int, _ Collection[int, mapset.Set[V]]) bool {
			return set.Contains(v)
		})
	})
}

// Difference returns the values of first which are not present in any of the other sequences. Duplicates in first are kept.
func Difference[V comparable](first Sequence[V], others ...Sequence[V]) Sequence[V] {
	excluded := mapset.NewThreadUnsafeSet[V](FlattenSequences(others...)...)
	return Reject(first, func(v V, _ int, _ Collection[int, V]) bool {
		return excluded.Contains(v)
	})
}

//
// Mapping helpers
//

// Extend copies every entry of sources into dest, in order. Later sources override earlier ones and dest itself.
// Keys already in dest keep their position. dest is returned; a new mapping is created if dest is nil.
func Extend[K comparable, V any](dest *Mapping[K, V], sources ...*Mapping[K, V]) *Mapping[K, V] {
	if dest == nil {
		dest = NewMapping[K, V]()
	}
	for i := range sources {
		Each[K, V](sources[i], func(v V, k K, _ Collection[K, V]) {
			dest.Set(k, v)
		})
	}
	return dest
}

// Defaults fills keys missing from dest with the entries of sources. Existing keys are never overwritten and
// the first source defining a key wins. dest is returned; a new mapping is created if dest is nil.
func Defaults[K comparable, V any](dest *Mapping[K, V], sources ...*Mapping[K, V]) *Mapping[K, V] {
	if dest == nil {
		dest = NewMapping[K, V]()
	}
	for i := range sources {
		Each[K, V](sources[i], func(v V, k K, _ Collection[K, V]) {
			if !dest.Has(k) {
				dest.Set(k, v)
			}
		})
	}
	return dest
}
