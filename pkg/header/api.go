/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package header

import (
	"mosn.io/api"
)

// apiHeaderMap exposes a Map as a mosn api.HeaderMap, for stream filters
// written against the mosn api.
type apiHeaderMap struct {
	m *Map
}

// NewAPIHeaderMap wraps m as an api.HeaderMap. Keys are lower-cased and
// values copied on the way in.
func NewAPIHeaderMap(m *Map) api.HeaderMap {
	return &apiHeaderMap{m: m}
}

// MapOf returns the Map behind an api.HeaderMap created by NewAPIHeaderMap.
func MapOf(h api.HeaderMap) (*Map, bool) {
	if ah, ok := h.(*apiHeaderMap); ok {
		return ah.m, true
	}
	return nil, false
}

// Get value of key
func (h *apiHeaderMap) Get(key string) (string, bool) {
	e := h.m.Get(NewKey(key))
	if e == nil {
		return "", false
	}
	return e.Value(), true
}

// Set key-value pair in header map, the previous pairs will be replaced if exists
func (h *apiHeaderMap) Set(key, value string) {
	h.m.SetCopy(NewKey(key), value)
}

// Add value for given key.
func (h *apiHeaderMap) Add(key, value string) {
	h.m.AddCopy(NewKey(key), value)
}

// Del delete pairs of specified key
func (h *apiHeaderMap) Del(key string) {
	h.m.Remove(NewKey(key))
}

// Range calls f sequentially for each key and value present in the map.
// If f returns false, range stops the iteration.
func (h *apiHeaderMap) Range(f func(key, value string) bool) {
	h.m.Iterate(func(e *Entry) bool {
		return f(e.Key(), e.Value())
	})
}

func (h *apiHeaderMap) Clone() api.HeaderMap {
	return NewAPIHeaderMap(CreateHeaderMapFrom(h.m.variant, h.m))
}

func (h *apiHeaderMap) ByteSize() uint64 {
	return h.m.ByteSize()
}
