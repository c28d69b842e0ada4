/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides functional utilities working on collections.
//
// A collection is either an ordered Sequence (a slice, keyed by index) or a Mapping (unique keys, traversed in
// insertion order). Each is the only traversal primitive: every other combinator is built on it, directly or through Reduce.
// None of the combinators modify the collection they are given and none of them are safe for concurrent modification
// of that collection.
package collection

import (
	"iter"
	"slices"
)

// NotFound is the index returned when a value is not present in a sequence.
const NotFound = -1

// Kind describes the shape of a collection.
type Kind int

const (
	// KindUndefined is the kind of anything which is neither a sequence nor a mapping e.g. a nil mapping.
	KindUndefined Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "undefined"
	}
}

// Collection is implemented by the two shapes of collections: Sequence and Mapping.
type Collection[K comparable, V any] interface {
	// Kind returns the shape of the collection.
	Kind() Kind
	// Len returns the number of elements in the collection.
	Len() int
	// All returns an iterator over key/value pairs in traversal order.
	All() iter.Seq2[K, V]
}

// Sequence is an ordered collection of values keyed by their index.
type Sequence[V any] []V

// SequenceOf returns a sequence made of values.
func SequenceOf[V any](values ...V) Sequence[V] {
	return Sequence[V](values)
}

func (s Sequence[V]) Kind() Kind {
	return KindSequence
}

func (s Sequence[V]) Len() int {
	return len(s)
}

// All returns an iterator over indexes and values in ascending index order.
func (s Sequence[V]) All() iter.Seq2[int, V] {
	return slices.All(s)
}

// Values returns an iterator over the values in ascending index order.
func (s Sequence[V]) Values() iter.Seq[V] {
	return slices.Values(s)
}

func isUndefined[K comparable, V any](c Collection[K, V]) bool {
	return c == nil || c.Kind() == KindUndefined
}

func length[K comparable, V any](c Collection[K, V]) int {
	if isUndefined(c) {
		return 0
	}
	return c.Len()
}
