/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package field provides helpers for optional values expressed as pointers.
// A nil pointer stands for an undefined value, e.g. a missing slot when zipping sequences of different lengths.
package field

import "reflect"

// ToOptional returns a pointer to a copy of v.
func ToOptional[T any](v T) *T {
	return &v
}

// ToOptionalOrNilIfEmpty returns a pointer to a copy of v, or nil if v is the zero value of its type.
func ToOptionalOrNilIfEmpty[T any](v T) *T {
	if reflect.ValueOf(&v).Elem().IsZero() {
		return nil
	}
	return ToOptional(v)
}

// Optional returns the value of an optional field or else returns defaultValue.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalInt returns a pointer to an int
func ToOptionalInt(i int) *int {
	return ToOptional(i)
}

// OptionalInt returns the value of an optional field or else
// returns defaultValue.
func OptionalInt(ptr *int, defaultValue int) int {
	return Optional(ptr, defaultValue)
}

// IsDefined states whether an optional value is set.
func IsDefined[T any](ptr *T) bool {
	return ptr != nil
}
