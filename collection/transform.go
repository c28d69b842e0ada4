package collection

import (
	"fmt"

	"github.com/ARM-software/golang-underbar/commonerrors"
	"github.com/ARM-software/golang-underbar/reflection"
)

//
// Transformation
//

// TransformFunc maps an element of a collection to a new value.
type TransformFunc[K comparable, V, R any] func(value V, key K, collection Collection[K, V]) R

// IdentityFunc returns a transformation returning values unchanged.
func IdentityFunc[K comparable, V any]() TransformFunc[K, V, V] {
	return func(v V, _ K, _ Collection[K, V]) V { return v }
}

// Map returns a sequence holding the result of transform applied to each element of c, in traversal order.
// The result always has as many elements as c. If transform is nil, all results are zero values.
func Map[K comparable, V, R any](c Collection[K, V], transform TransformFunc[K, V, R]) Sequence[R] {
	result := make(Sequence[R], 0, length(c))
	Each(c, func(v V, k K, col Collection[K, V]) {
		var r R
		if transform != nil {
			r = transform(v, k, col)
		}
		result = append(result, r)
	})
	return result
}

// Pluck returns the value of the property propertyName of each record of c.
// Records can be maps keyed by strings, mappings keyed by strings, structures or pointers to them (see reflection.GetProperty).
// Records without such a property yield nil.
func Pluck[K comparable, V any](c Collection[K, V], propertyName string) Sequence[any] {
	return Map(c, func(record V, _ K, _ Collection[K, V]) any {
		property, _ := reflection.GetProperty(record, propertyName)
		return property
	})
}

// PluckFunc is the typed counterpart of Pluck: extract returns the property of a record and whether the record has it.
// Records without the property yield nil.
func PluckFunc[K comparable, V, P any](c Collection[K, V], extract func(record V) (P, bool)) Sequence[*P] {
	return Map(c, func(record V, _ K, _ Collection[K, V]) *P {
		if extract == nil {
			return nil
		}
		property, found := extract(record)
		if !found {
			return nil
		}
		return &property
	})
}

// Invoke calls method on each element of c with args and returns the results in traversal order.
// method is either the name of a method of the elements or a function which is given the element as first argument followed by args.
// The first element on which the call fails stops the invocation of any further element and the error is returned:
// a missing method is reported as commonerrors.ErrNotFound.
func Invoke[K comparable, V any](c Collection[K, V], method any, args ...any) (result Sequence[any], err error) {
	var call func(element V) (any, error)
	switch m := method.(type) {
	case nil:
		err = commonerrors.UndefinedParameter("no method to invoke was provided")
		return
	case string:
		if m == "" {
			err = commonerrors.UndefinedParameter("empty method name")
			return
		}
		call = func(element V) (any, error) {
			return reflection.InvokeMethod(element, m, args...)
		}
	default:
		call = func(element V) (any, error) {
			return reflection.CallFunction(m, element, args...)
		}
	}
	result = Map(c, func(element V, key K, _ Collection[K, V]) any {
		if err != nil {
			return nil
		}
		r, subErr := call(element)
		if subErr != nil {
			err = fmt.Errorf("could not invoke method on element [%v]: %w", key, subErr)
		}
		return r
	})
	if err != nil {
		result = nil
	}
	return
}
