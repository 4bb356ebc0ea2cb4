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
	"mosn.io/headermap/pkg/log"
)

// KeyValue is a header used to build a map.
type KeyValue struct {
	Key   Key
	Value string
}

// NewRequestHeaderMap returns an empty request header map.
func NewRequestHeaderMap() *Map {
	return NewMap(RequestHeaders)
}

// NewRequestTrailerMap returns an empty request trailer map.
func NewRequestTrailerMap() *Map {
	return NewMap(RequestTrailers)
}

// NewResponseHeaderMap returns an empty response header map.
func NewResponseHeaderMap() *Map {
	return NewMap(ResponseHeaders)
}

// NewResponseTrailerMap returns an empty response trailer map.
func NewResponseTrailerMap() *Map {
	return NewMap(ResponseTrailers)
}

// CopyFrom adds a copy of every header of src to dst. Nothing of dst keeps
// pointing at memory referenced by src. dst and src must be different maps.
func CopyFrom(dst, src *Map) {
	if dst == src {
		return
	}
	src.Iterate(func(e *Entry) bool {
		// the key is already lower-cased
		dst.insertByKey(NewCopyValue(e.Key()), NewCopyValue(b2s(e.ValueBytes())))
		return true
	})
}

// InitFromList adds a copy of every value to m, in order.
func InitFromList(m *Map, values []KeyValue) {
	for _, kv := range values {
		m.AddCopy(kv.Key, kv.Value)
	}
}

// CreateHeaderMap returns a map of variant v holding values.
func CreateHeaderMap(v *Variant, values ...KeyValue) *Map {
	m := NewMap(v)
	InitFromList(m, values)
	return m
}

// CreateHeaderMapFrom returns a map of variant v holding a copy of src.
// src may be of another variant, in which case its well-known headers that
// v does not carry become regular entries.
func CreateHeaderMapFrom(v *Variant, src *Map) *Map {
	m := NewMap(v)
	if src == nil {
		return m
	}
	if src.variant != m.variant {
		log.DefaultLogger.Debugf("[header] [copy] copy %s map into %s map", src.variant.name, m.variant.name)
	}
	CopyFrom(m, src)
	return m
}
