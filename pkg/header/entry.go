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

// noSlot marks an entry that does not back an inline slot.
const noSlot = -1

// Entry is one header field. Entries are owned by the list of the map holding
// them; a pointer to an Entry is valid until the entry is removed.
type Entry struct {
	key   Value
	value Value

	// list links, root is the sentinel of the owning list
	prev, next *Entry
	root       *Entry

	// slot is the inline slot index this entry backs in its map, or noSlot
	slot int
}

func newEntry(key, value Value) *Entry {
	return &Entry{
		key:   key,
		value: value,
		slot:  noSlot,
	}
}

// Key returns the header name.
func (e *Entry) Key() string {
	// keys are never mutated once the entry exists
	return b2s(e.key.buf)
}

// Value returns a copy of the header value.
func (e *Entry) Value() string {
	return e.value.String()
}

// ValueBytes returns the header value without copying. The slice is only valid
// until the entry is next modified, and must not be written to.
func (e *Entry) ValueBytes() []byte {
	return e.value.Bytes()
}

// ValueType returns the storage mode of the value.
func (e *Entry) ValueType() ValueType {
	return e.value.Type()
}

// KeyType returns the storage mode of the key.
func (e *Entry) KeyType() ValueType {
	return e.key.Type()
}

func (e *Entry) size() uint64 {
	return e.key.Size() + e.value.Size()
}

// IsPseudo reports whether the entry is a pseudo header.
func (e *Entry) IsPseudo() bool {
	return isPseudoHeader(e.Key())
}

func (e *Entry) nextEntry() *Entry {
	if n := e.next; e.root != nil && n != e.root {
		return n
	}
	return nil
}

func (e *Entry) prevEntry() *Entry {
	if p := e.prev; e.root != nil && p != e.root {
		return p
	}
	return nil
}
