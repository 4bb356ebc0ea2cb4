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
	"strings"

	"github.com/armon/go-radix"
)

// LookupResult is the outcome of Map.Lookup.
type LookupResult int

const (
	// Found means the header exists in the map.
	Found LookupResult = iota
	// NotFound means the header is not in the map.
	NotFound
	// NotSupported means the name is a well-known header that the variant
	// of the map does not carry.
	NotSupported
)

func (r LookupResult) String() string {
	switch r {
	case Found:
		return "Found"
	case NotFound:
		return "NotFound"
	case NotSupported:
		return "NotSupported"
	}
	return "Unknown"
}

// DefaultDelimiter joins values by AppendCopy.
const DefaultDelimiter = ","

// no inline slots at all, used for maps created without a variant
var genericVariant = &Variant{
	name:  "generic",
	table: radix.New(),
}

// Map stores the header (or trailer) fields of one HTTP message.
//
// Entries are kept in insertion order with pseudo headers in front. Well-known
// headers of the map variant are also reachable through inline slots in O(1).
// The byte size of all keys and values is maintained on every mutation.
//
// A Map is owned by a single goroutine and must not be copied by value.
type Map struct {
	variant        *Variant
	headers        headerList
	inline         []*Entry
	cachedByteSize uint64
}

// NewMap returns an empty map of variant v.
func NewMap(v *Variant) *Map {
	if v == nil {
		v = genericVariant
	}
	m := &Map{
		variant: v,
		inline:  make([]*Entry, v.slotCount()),
	}
	m.headers.init()
	return m
}

// Variant returns the variant the map was created with.
func (m *Map) Variant() *Variant {
	return m.variant
}

// AddReference adds a header, referencing both key and value.
// The caller must keep value unchanged for the lifetime of the map.
func (m *Map) AddReference(key Key, value []byte) {
	m.insertByKey(NewReferenceValue(s2b(key.name)), NewReferenceValue(value))
}

// AddReferenceKey adds a header referencing key and copying value.
func (m *Map) AddReferenceKey(key Key, value string) {
	m.insertByKey(NewReferenceValue(s2b(key.name)), NewCopyValue(value))
}

// AddReferenceKeyInteger adds a header referencing key, with value formatted in base 10.
func (m *Map) AddReferenceKeyInteger(key Key, value uint64) {
	v := Value{}
	v.SetInteger(value)
	m.insertByKey(NewReferenceValue(s2b(key.name)), v)
}

// AddCopy adds a header copying both key and value.
func (m *Map) AddCopy(key Key, value string) {
	m.insertByKey(NewCopyValue(key.name), NewCopyValue(value))
}

// AddCopyInteger adds a header copying key, with value formatted in base 10.
func (m *Map) AddCopyInteger(key Key, value uint64) {
	v := Value{}
	v.SetInteger(value)
	m.insertByKey(NewCopyValue(key.name), v)
}

// AppendCopy appends value to the first header named key, separated by a comma.
// The header is added when it does not exist yet.
func (m *Map) AppendCopy(key Key, value string) {
	m.appendByKey(key, value, DefaultDelimiter)
}

// SetReference replaces every header named key by one referencing key and value.
func (m *Map) SetReference(key Key, value []byte) {
	m.setByKey(NewReferenceValue(s2b(key.name)), NewReferenceValue(value))
}

// SetReferenceKey replaces every header named key by one referencing key and copying value.
func (m *Map) SetReferenceKey(key Key, value string) {
	m.setByKey(NewReferenceValue(s2b(key.name)), NewCopyValue(value))
}

// SetCopy replaces every header named key by one copying key and value.
func (m *Map) SetCopy(key Key, value string) {
	m.setByKey(NewCopyValue(key.name), NewCopyValue(value))
}

// Get returns the first header named key, or nil.
func (m *Map) Get(key Key) *Entry {
	if slot := m.variant.lookup(key.name); slot != noSlot {
		return m.inline[slot]
	}
	return m.scan(key.name)
}

// Lookup is like Get, but also tells apart a well-known header the variant
// does not carry: NotSupported is returned for such a name together with the
// first entry added under it through the generic API, if any.
func (m *Map) Lookup(key Key) (*Entry, LookupResult) {
	if slot := m.variant.lookup(key.name); slot != noSlot {
		if e := m.inline[slot]; e != nil {
			return e, Found
		}
		return nil, NotFound
	}
	e := m.scan(key.name)
	if isKnownInline(key.name) {
		return e, NotSupported
	}
	if e != nil {
		return e, Found
	}
	return nil, NotFound
}

// Remove deletes every header named key and returns how many were deleted.
func (m *Map) Remove(key Key) int {
	name := key.name
	if slot := m.variant.lookup(name); slot != noSlot && m.inline[slot] == nil {
		// an empty slot means no entry has this name
		return 0
	}
	n, size := m.eraseIf(func(e *Entry) bool {
		return e.Key() == name
	})
	m.subtractSize(size)
	return n
}

// RemovePrefix deletes every header whose name starts with prefix and returns
// how many were deleted.
func (m *Map) RemovePrefix(prefix Key) int {
	p := prefix.name
	n, size := m.eraseIf(func(e *Entry) bool {
		return strings.HasPrefix(e.Key(), p)
	})
	m.subtractSize(size)
	return n
}

// Iterate calls f for each header in order, pseudo headers first.
// Iteration stops when f returns false. f must not modify the map.
func (m *Map) Iterate(f func(e *Entry) bool) {
	for e := m.headers.front(); e != nil; e = e.nextEntry() {
		if !f(e) {
			return
		}
	}
}

// IterateReverse is like Iterate, in reverse order.
func (m *Map) IterateReverse(f func(e *Entry) bool) {
	for e := m.headers.back(); e != nil; e = e.prevEntry() {
		if !f(e) {
			return
		}
	}
}

// ByteSize returns the total size of every key and value.
func (m *Map) ByteSize() uint64 {
	return m.cachedByteSize
}

// Len returns the number of headers.
func (m *Map) Len() int {
	return m.headers.size()
}

// Empty reports whether the map has no headers.
func (m *Map) Empty() bool {
	return m.headers.empty()
}

// Equal reports whether both maps hold the same headers in the same order.
func (m *Map) Equal(rhs *Map) bool {
	if m == rhs {
		return true
	}
	if rhs == nil || m.Len() != rhs.Len() {
		return false
	}
	for l, r := m.headers.front(), rhs.headers.front(); l != nil && r != nil; l, r = l.nextEntry(), r.nextEntry() {
		if l.Key() != r.Key() || b2s(l.ValueBytes()) != b2s(r.ValueBytes()) {
			return false
		}
	}
	return true
}

// Clear deletes every header.
func (m *Map) Clear() {
	m.headers.clear()
	for i := range m.inline {
		m.inline[i] = nil
	}
	m.cachedByteSize = 0
}

func (m *Map) scan(name string) *Entry {
	for e := m.headers.front(); e != nil; e = e.nextEntry() {
		if e.Key() == name {
			return e
		}
	}
	return nil
}

func (m *Map) insertByKey(key, value Value) *Entry {
	e := m.headers.insert(newEntry(key, value))
	m.addSize(e.size())
	m.bindInline(e)
	return e
}

func (m *Map) appendByKey(key Key, data, delimiter string) {
	if e := m.Get(key); e != nil {
		m.addSize(appendToHeader(&e.value, data, delimiter))
		return
	}
	m.AddCopy(key, data)
}

// setByKey removes every header with the name of key, then adds one.
// The cached size only moves by the net delta.
func (m *Map) setByKey(key, value Value) {
	name := b2s(key.buf)
	_, removed := m.eraseIf(func(e *Entry) bool {
		return e.Key() == name
	})
	e := m.headers.insert(newEntry(key, value))
	m.updateSize(removed, e.size())
	m.bindInline(e)
}

// bindInline makes e the slot entry of its name when the slot is empty.
// An empty slot means no other entry has that name, so e is the first one.
func (m *Map) bindInline(e *Entry) {
	slot := m.variant.lookup(e.Key())
	if slot == noSlot || m.inline[slot] != nil {
		return
	}
	m.inline[slot] = e
	e.slot = slot
}

// eraseIf removes the entries matching pred and clears the slots they back.
// It returns how many were removed and their total size, the cached size is
// left to the caller.
func (m *Map) eraseIf(pred func(e *Entry) bool) (int, uint64) {
	var size uint64
	n := m.headers.removeIf(func(e *Entry) bool {
		if !pred(e) {
			return false
		}
		size += e.size()
		if e.slot != noSlot {
			m.inline[e.slot] = nil
			e.slot = noSlot
		}
		return true
	})
	return n, size
}

func (m *Map) addSize(size uint64) {
	m.cachedByteSize += size
}

func (m *Map) subtractSize(size uint64) {
	m.cachedByteSize -= size
}

func (m *Map) updateSize(from, to uint64) {
	m.cachedByteSize = m.cachedByteSize - from + to
}

// appendToHeader appends data to v and returns the number of bytes added.
// Empty data is ignored.
func appendToHeader(v *Value, data, delimiter string) uint64 {
	if data == "" {
		return 0
	}
	added := uint64(len(data))
	if !v.Empty() {
		added += uint64(len(delimiter))
	}
	v.Append(data, delimiter)
	return added
}
