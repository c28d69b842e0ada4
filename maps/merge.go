/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package maps provides merging helpers for plain Go maps.
package maps

import "maps"

// Merge merges multiple maps into a new map.
// Later maps override earlier ones on key conflicts.
// Nil maps are ignored.
func Merge[K comparable, T any](m ...map[K]T) map[K]T {
	dest := make(map[K]T)
	Extend(dest, m...)
	return dest
}

// Extend copies all the entries of sources into dest, in order, so that later sources override earlier ones.
// dest is modified in place and returned. If dest is nil, a new map is allocated.
func Extend[K comparable, T any](dest map[K]T, sources ...map[K]T) map[K]T {
	if dest == nil {
		dest = make(map[K]T)
	}
	for i := range sources {
		if sources[i] == nil {
			continue
		}
		maps.Copy(dest, sources[i])
	}
	return dest
}

// Defaults fills in dest the keys which are missing using the entries of sources.
// Keys already present in dest are never overwritten, and the first source defining a key wins.
// dest is modified in place and returned. If dest is nil, a new map is allocated.
func Defaults[K comparable, T any](dest map[K]T, sources ...map[K]T) map[K]T {
	if dest == nil {
		dest = make(map[K]T)
	}
	for i := range sources {
		for k, v := range sources[i] {
			if _, found := dest[k]; !found {
				dest[k] = v
			}
		}
	}
	return dest
}
