package collection

import (
	"cmp"
	"math"
	"math/big"
	"reflect"
	"slices"
	"time"

	"github.com/ARM-software/golang-underbar/commonerrors"
	"github.com/ARM-software/golang-underbar/field"
	"github.com/ARM-software/golang-underbar/reflection"
)

//
// Ordering
//

type criterionRecord[V, O any] struct {
	value     V
	criterion O
}

func sortByCriterion[K comparable, V, O any](c Collection[K, V], criterion func(V) O, compare func(a, b O) int) Sequence[V] {
	records := Map(c, func(v V, _ K, _ Collection[K, V]) criterionRecord[V, O] {
		return criterionRecord[V, O]{value: v, criterion: criterion(v)}
	})
	slices.SortStableFunc(records, func(a, b criterionRecord[V, O]) int {
		return compare(a.criterion, b.criterion)
	})
	return Map(records, func(r criterionRecord[V, O], _ int, _ Collection[int, criterionRecord[V, O]]) V {
		return r.value
	})
}

// SortBy returns the values of c sorted in ascending order of the criterion computed for each of them.
// The sort is stable: values with equal criteria keep their traversal order. If criterion is nil, values are returned in traversal order.
func SortBy[K comparable, V any, O cmp.Ordered](c Collection[K, V], criterion func(V) O) Sequence[V] {
	if criterion == nil {
		return Map(c, IdentityFunc[K, V]())
	}
	return sortByCriterion(c, criterion, cmp.Compare[O])
}

// SortByProperty is similar to SortBy but sorts records according to the value of their property propertyName (see Pluck).
// Property values are compared using CompareValues and records without the property are placed last.
// An error is returned if property values cannot be compared with each other.
func SortByProperty[K comparable, V any](c Collection[K, V], propertyName string) (sorted Sequence[V], err error) {
	sorted = sortByCriterion(c, func(record V) any {
		property, _ := reflection.GetProperty(record, propertyName)
		return property
	}, func(a, b any) int {
		result, subErr := CompareValues(a, b)
		if subErr != nil && err == nil {
			err = subErr
		}
		return result
	})
	if err != nil {
		sorted = nil
	}
	return
}

// CompareValues compares two values and returns -1 if a < b, 0 if a == b and +1 if a > b.
// Numbers are compared by value whatever their type, strings lexically, booleans with false < true and times chronologically.
// nil is greater than anything else. Any other combination cannot be compared and an error is returned.
func CompareValues(a, b any) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return 1, nil
	case b == nil:
		return -1, nil
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb), nil
		}
	}
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	switch {
	case isSigned(va) && isSigned(vb):
		return cmp.Compare(va.Int(), vb.Int()), nil
	case isUnsigned(va) && isUnsigned(vb):
		return cmp.Compare(va.Uint(), vb.Uint()), nil
	case isSigned(va) && isUnsigned(vb):
		return compareSignedUnsigned(va.Int(), vb.Uint()), nil
	case isUnsigned(va) && isSigned(vb):
		return -compareSignedUnsigned(vb.Int(), va.Uint()), nil
	case isFloat(va) && isFloat(vb):
		return cmp.Compare(va.Float(), vb.Float()), nil
	case isFloat(va) && isNumber(vb):
		return -compareIntegerFloat(vb, va.Float()), nil
	case isNumber(va) && isFloat(vb):
		return compareIntegerFloat(va, vb.Float()), nil
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmp.Compare(va.String(), vb.String()), nil
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return compareBool(va.Bool(), vb.Bool()), nil
	default:
		return 0, commonerrors.Newf(commonerrors.ErrInvalid, "values of type %T and %T cannot be compared", a, b)
	}
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func isNumber(v reflect.Value) bool {
	return isSigned(v) || isUnsigned(v) || isFloat(v)
}

func compareSignedUnsigned(s int64, u uint64) int {
	if s < 0 {
		return -1
	}
	return cmp.Compare(uint64(s), u)
}

// compareIntegerFloat compares an integer with a float exactly. NaN is smaller than any integer, as in cmp.Compare.
func compareIntegerFloat(integer reflect.Value, f float64) int {
	if math.IsNaN(f) {
		return 1
	}
	exact := new(big.Float)
	if isSigned(integer) {
		exact.SetInt64(integer.Int())
	} else {
		exact.SetUint64(integer.Uint())
	}
	return exact.Cmp(big.NewFloat(f))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// Zip merges sequences together: tuple i holds the i-th value of each sequence.
// The result is as long as the longest sequence and positions missing from shorter sequences are undefined (nil).
func Zip[V any](sequences ...Sequence[V]) Sequence[Sequence[*V]] {
	all := Sequence[Sequence[V]](sequences)
	longest := Reduce(all, func(longest int, s Sequence[V], _ int) int {
		return max(longest, len(s))
	}, 0)
	indexes := Range(0, longest, nil)
	return Map(indexes, func(i int, _ int, _ Collection[int, int]) Sequence[*V] {
		return Map(all, func(s Sequence[V], _ int, _ Collection[int, Sequence[V]]) *V {
			if i < len(s) {
				return field.ToOptional(s[i])
			}
			return nil
		})
	})
}
