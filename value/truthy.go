package value

import "reflect"

// IsTruthy states whether a value counts as true when it is used in place of a boolean predicate.
//
//   - nil and false are falsy, true is truthy;
//   - numbers are truthy when non-zero, strings when non-empty;
//   - NaN is non-zero and therefore truthy;
//   - slices, maps, channels, functions, pointers and interfaces are truthy when non-nil, even if empty;
//   - any other value (e.g. structures, arrays) is truthy.
func IsTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}
	objValue := reflect.ValueOf(value)
	switch objValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !objValue.IsZero()
	case reflect.Bool:
		return objValue.Bool()
	case reflect.String:
		return objValue.Len() > 0
	case reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Ptr, reflect.Interface, reflect.UnsafePointer:
		return !objValue.IsNil()
	default:
		return true
	}
}

// IsFalsy is the negation of IsTruthy.
func IsFalsy(value any) bool {
	return !IsTruthy(value)
}
