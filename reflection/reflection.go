/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reflection provides helpers to access properties and methods of values by name.
package reflection

import (
	"reflect"
	"unsafe"

	"github.com/go-viper/mapstructure/v2"

	"github.com/ARM-software/golang-underbar/commonerrors"
	"github.com/ARM-software/golang-underbar/value"
)

var errorType = reflect.TypeFor[error]()

// PropertyGetter is implemented by record types exposing their own named properties.
type PropertyGetter interface {
	GetProperty(name string) (any, bool)
}

// IsEmpty checks whether a value is empty. See value.IsEmpty.
func IsEmpty(v any) bool {
	return value.IsEmpty(v)
}

// GetUnexportedStructureField returns the value of a field of the structure pointed to by `structure`, even if unexported.
func GetUnexportedStructureField(structure any, fieldName string) any {
	return GetStructureField(fetchStructureField(structure, fieldName))
}

// GetStructureField returns the value held by an addressable field, even if unexported.
func GetStructureField(field reflect.Value) any {
	if !field.IsValid() {
		return nil
	}
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem().Interface()
}

func fetchStructureField(structure any, fieldName string) reflect.Value {
	v := reflect.ValueOf(structure)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return v.Elem().FieldByName(fieldName)
}

// GetProperty returns the value of the property `name` of a record.
// Records can be maps with string keys, PropertyGetter implementations, structures or pointers to any of them.
// Structure fields are matched by name first (unexported fields included) and then by `mapstructure` tag.
// The second returned value is false when the record has no such property.
func GetProperty(record any, name string) (any, bool) {
	if record == nil {
		return nil, false
	}
	if getter, ok := record.(PropertyGetter); ok {
		return getter.GetProperty(name)
	}
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		entry := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	case reflect.Struct:
		return getStructProperty(v, name)
	default:
		return nil, false
	}
}

func getStructProperty(v reflect.Value, name string) (any, bool) {
	if structField, found := v.Type().FieldByName(name); found {
		addressable := reflect.New(v.Type()).Elem()
		addressable.Set(v)
		f, err := addressable.FieldByIndexErr(structField.Index)
		if err != nil {
			// promoted through a nil embedded pointer
			return nil, true
		}
		return GetStructureField(f), true
	}
	var decoded map[string]any
	if err := mapstructure.Decode(v.Interface(), &decoded); err != nil {
		return nil, false
	}
	property, found := decoded[name]
	return property, found
}

// HasMethod states whether a method called `name` can be called on `obj`.
func HasMethod(obj any, name string) bool {
	return findMethod(obj, name).IsValid()
}

func findMethod(obj any, name string) reflect.Value {
	if obj == nil {
		return reflect.Value{}
	}
	v := reflect.ValueOf(obj)
	if m := v.MethodByName(name); m.IsValid() {
		return m
	}
	if v.Kind() != reflect.Ptr {
		// Pointer receiver methods are reachable through a copy.
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		return ptr.MethodByName(name)
	}
	return reflect.Value{}
}

// InvokeMethod calls the method `name` of `obj` with `args`.
// The first value returned by the method is returned. If the last value returned by the method is a non-nil error, it is returned instead.
// No method is called on a nil pointer: commonerrors.ErrUndefined is returned instead.
func InvokeMethod(obj any, name string, args ...any) (any, error) {
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, commonerrors.Newf(commonerrors.ErrUndefined, "cannot invoke method [%v] on a nil %T", name, obj)
	}
	method := findMethod(obj, name)
	if !method.IsValid() {
		return nil, commonerrors.Newf(commonerrors.ErrNotFound, "missing method [%v] on value of type %T", name, obj)
	}
	return call(method, args)
}

// CallFunction calls the function `fn` with `receiver` as first argument followed by `args`.
func CallFunction(fn any, receiver any, args ...any) (any, error) {
	f := reflect.ValueOf(fn)
	if fn == nil || f.Kind() != reflect.Func {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "expected a function but got %T", fn)
	}
	if f.IsNil() {
		return nil, commonerrors.UndefinedParameter("function is nil")
	}
	return call(f, append([]any{receiver}, args...))
}

func call(f reflect.Value, args []any) (result any, err error) {
	in, err := buildArguments(f.Type(), args)
	if err != nil {
		return
	}
	var out []reflect.Value
	if f.Type().IsVariadic() {
		out = f.CallSlice(in)
	} else {
		out = f.Call(in)
	}
	if len(out) == 0 {
		return
	}
	last := out[len(out)-1]
	if last.Type() == errorType {
		if !last.IsNil() {
			err = last.Interface().(error)
			return
		}
		if len(out) == 1 {
			return
		}
	}
	result = out[0].Interface()
	return
}

func buildArguments(fType reflect.Type, args []any) (in []reflect.Value, err error) {
	numIn := fType.NumIn()
	variadic := fType.IsVariadic()
	if (!variadic && len(args) != numIn) || (variadic && len(args) < numIn-1) {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "function expects %v arguments but %v were provided", numIn, len(args))
		return
	}
	fixed := numIn
	if variadic {
		fixed = numIn - 1
	}
	in = make([]reflect.Value, 0, numIn)
	for i := 0; i < fixed; i++ {
		arg, subErr := toArgument(fType.In(i), args[i], i)
		if subErr != nil {
			err = subErr
			return
		}
		in = append(in, arg)
	}
	if !variadic {
		return
	}
	sliceType := fType.In(numIn - 1)
	rest := reflect.MakeSlice(sliceType, 0, len(args)-fixed)
	for i := fixed; i < len(args); i++ {
		arg, subErr := toArgument(sliceType.Elem(), args[i], i)
		if subErr != nil {
			err = subErr
			return
		}
		rest = reflect.Append(rest, arg)
	}
	in = append(in, rest)
	return
}

func toArgument(paramType reflect.Type, arg any, position int) (reflect.Value, error) {
	if arg == nil {
		switch paramType.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(paramType), nil
		default:
			return reflect.Value{}, commonerrors.Newf(commonerrors.ErrInvalid, "argument #%v cannot be nil as it is of type %v", position, paramType)
		}
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(paramType) {
		return reflect.Value{}, commonerrors.Newf(commonerrors.ErrInvalid, "argument #%v of type %v cannot be used as %v", position, v.Type(), paramType)
	}
	return v, nil
}
