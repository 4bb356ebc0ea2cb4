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

// The typed accessors below take an Inline descriptor. When the variant of
// the map keeps a slot for it, the entry is reached without any lookup by
// name; the slot and its list entry are created together on the first write.
// A descriptor the variant does not carry falls back to the generic API on
// the descriptor name. A nil descriptor reads as absent and writes nothing.

// GetInline returns the first header described by h, or nil.
func (m *Map) GetInline(h *Inline) *Entry {
	slot := m.variant.slotOf(h)
	if slot == noSlot {
		if h == nil {
			return nil
		}
		return m.scan(h.name.name)
	}
	return m.inline[slot]
}

// AppendInline appends data to the header described by h, preceded by
// delimiter if the current value is not empty.
func (m *Map) AppendInline(h *Inline, data, delimiter string) {
	slot := m.variant.slotOf(h)
	if slot == noSlot {
		if h == nil {
			return
		}
		m.appendByKey(h.name, data, delimiter)
		return
	}
	e := m.maybeCreateInline(slot, h)
	m.addSize(appendToHeader(&e.value, data, delimiter))
}

// SetReferenceInline sets the header described by h to reference value.
func (m *Map) SetReferenceInline(h *Inline, value []byte) {
	slot := m.variant.slotOf(h)
	if slot == noSlot {
		if h == nil {
			return
		}
		m.SetReference(h.name, value)
		return
	}
	e := m.maybeCreateInline(slot, h)
	m.updateSize(e.value.Size(), uint64(len(value)))
	e.value.SetReference(value)
}

// SetInline sets the header described by h to a copy of value.
func (m *Map) SetInline(h *Inline, value string) {
	slot := m.variant.slotOf(h)
	if slot == noSlot {
		if h == nil {
			return
		}
		m.SetCopy(h.name, value)
		return
	}
	e := m.maybeCreateInline(slot, h)
	m.updateSize(e.value.Size(), uint64(len(value)))
	e.value.SetCopy(value)
}

// SetInlineInteger sets the header described by h to value in base 10.
func (m *Map) SetInlineInteger(h *Inline, value uint64) {
	slot := m.variant.slotOf(h)
	if slot == noSlot {
		if h == nil {
			return
		}
		v := Value{}
		v.SetInteger(value)
		m.setByKey(NewReferenceValue(s2b(h.name.name)), v)
		return
	}
	e := m.maybeCreateInline(slot, h)
	m.subtractSize(e.value.Size())
	e.value.SetInteger(value)
	m.addSize(e.value.Size())
}

// RemoveInline removes the header described by h and returns 1, or 0 when
// it does not exist. Another header with the same name, if any, takes over
// the slot.
func (m *Map) RemoveInline(h *Inline) int {
	slot := m.variant.slotOf(h)
	if slot == noSlot {
		if h == nil {
			return 0
		}
		return m.Remove(h.name)
	}
	e := m.inline[slot]
	if e == nil {
		return 0
	}
	m.inline[slot] = nil
	e.slot = noSlot
	next := m.headers.erase(e)
	m.subtractSize(e.size())

	// entries with the same name all live after e
	name := h.name.name
	for n := next; n != nil; n = n.nextEntry() {
		if n.Key() == name {
			m.inline[slot] = n
			n.slot = slot
			break
		}
	}
	return 1
}

func (m *Map) maybeCreateInline(slot int, h *Inline) *Entry {
	if e := m.inline[slot]; e != nil {
		return e
	}
	e := m.headers.insert(newEntry(NewReferenceValue(s2b(h.name.name)), Value{}))
	m.addSize(e.size())
	m.inline[slot] = e
	e.slot = slot
	return e
}
