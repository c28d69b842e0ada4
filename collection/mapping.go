/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"cmp"
	"iter"
	"slices"
)

// Entry is a key/value pair of a Mapping.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Mapping is a collection of values indexed by unique keys. Keys are traversed in the order they were first inserted.
// A nil *Mapping is a valid but undefined collection: traversing it yields nothing and all read operations are nil-safe.
// Set needs a non-nil mapping, e.g. one created with NewMapping, MappingOf or MappingFromMap, or a zero Mapping value.
type Mapping[K comparable, V any] struct {
	keys    []K
	entries map[K]V
}

// NewMapping returns an empty mapping.
func NewMapping[K comparable, V any]() *Mapping[K, V] {
	return &Mapping[K, V]{
		keys:    make([]K, 0),
		entries: make(map[K]V),
	}
}

// MappingOf returns a mapping made of entries, inserted in order.
func MappingOf[K comparable, V any](entries ...Entry[K, V]) *Mapping[K, V] {
	m := NewMapping[K, V]()
	for i := range entries {
		m.Set(entries[i].Key, entries[i].Value)
	}
	return m
}

// MappingFromMap converts a Go map into a mapping. As Go maps have no order, keys are inserted in ascending order so that
// traversals are deterministic.
func MappingFromMap[K cmp.Ordered, V any](m map[K]V) *Mapping[K, V] {
	mapping := NewMapping[K, V]()
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		mapping.Set(k, m[k])
	}
	return mapping
}

func (m *Mapping[K, V]) Kind() Kind {
	if m == nil {
		return KindUndefined
	}
	return KindMapping
}

func (m *Mapping[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// All returns an iterator over keys and values in insertion order.
func (m *Mapping[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Set sets the value of key. A new key is appended to the traversal order whereas an existing key keeps its position.
// The receiver must not be nil.
func (m *Mapping[K, V]) Set(key K, value V) {
	if m.entries == nil {
		m.entries = make(map[K]V)
	}
	if _, found := m.entries[key]; !found {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// Get returns the value of key and whether it is present.
func (m *Mapping[K, V]) Get(key K) (value V, found bool) {
	if m == nil {
		return
	}
	value, found = m.entries[key]
	return
}

// Has states whether key is present.
func (m *Mapping[K, V]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

// Delete removes key from the mapping, if present.
func (m *Mapping[K, V]) Delete(key K) {
	if !m.Has(key) {
		return
	}
	delete(m.entries, key)
	m.keys = slices.DeleteFunc(m.keys, func(k K) bool { return k == key })
}

// Keys returns the keys in traversal order.
func (m *Mapping[K, V]) Keys() Sequence[K] {
	if m == nil {
		return Sequence[K]{}
	}
	return slices.Clone(m.keys)
}

// Values returns the values in traversal order.
func (m *Mapping[K, V]) Values() Sequence[V] {
	values := make(Sequence[V], 0, m.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Entries returns the key/value pairs in traversal order.
func (m *Mapping[K, V]) Entries() Sequence[Entry[K, V]] {
	entries := make(Sequence[Entry[K, V]], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// Clone returns a shallow copy of the mapping.
func (m *Mapping[K, V]) Clone() *Mapping[K, V] {
	return MappingOf(m.Entries()...)
}

// ToMap returns the content of the mapping as a Go map.
func (m *Mapping[K, V]) ToMap() map[K]V {
	result := make(map[K]V, m.Len())
	for k, v := range m.All() {
		result[k] = v
	}
	return result
}

// GetProperty returns the value stored under the key equal to name. It allows mappings keyed by strings to be used as records.
func (m *Mapping[K, V]) GetProperty(name string) (any, bool) {
	for k, v := range m.All() {
		if any(k) == any(name) {
			return v, true
		}
	}
	return nil, false
}
