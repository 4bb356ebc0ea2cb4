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

import "strconv"

// ValueType tells whether a Value borrows its bytes or owns them.
type ValueType uint8

const (
	// Reference values point at memory owned by the caller, which must
	// outlive the header map.
	Reference ValueType = iota
	// Owned values hold an independent copy.
	Owned
)

func (t ValueType) String() string {
	switch t {
	case Reference:
		return "reference"
	case Owned:
		return "owned"
	}
	return "unknown"
}

// Value is a header string that is either a reference to external memory
// or an owned copy. The zero Value is an empty reference.
//
// Referenced memory is never written to: every mutation of a reference
// value first moves it into owned storage.
type Value struct {
	buf []byte
	typ ValueType
}

// NewReferenceValue returns a Value referencing b.
func NewReferenceValue(b []byte) Value {
	return Value{buf: b, typ: Reference}
}

// NewCopyValue returns a Value holding a copy of s.
func NewCopyValue(s string) Value {
	v := Value{}
	v.SetCopy(s)
	return v
}

// SetReference points the value at b, dropping any owned storage.
func (v *Value) SetReference(b []byte) {
	v.buf = b
	v.typ = Reference
}

// SetCopy stores a copy of s. Owned storage is reused when possible.
func (v *Value) SetCopy(s string) {
	v.buf = append(v.owned(len(s)), s...)
	v.typ = Owned
}

// SetInteger stores the base 10 representation of n.
func (v *Value) SetInteger(n uint64) {
	// 20 is the length of the largest uint64
	v.buf = strconv.AppendUint(v.owned(20), n, 10)
	v.typ = Owned
}

// Append adds data to the value, preceded by delimiter if the value is not empty.
// A reference value is copied into owned storage first; owned storage grows in place
// when the capacity allows it.
func (v *Value) Append(data string, delimiter string) {
	n := len(data)
	if len(v.buf) > 0 {
		n += len(delimiter)
	}
	if v.typ == Reference {
		buf := make([]byte, len(v.buf), len(v.buf)+n)
		copy(buf, v.buf)
		v.buf = buf
		v.typ = Owned
	}
	if len(v.buf) > 0 {
		v.buf = append(v.buf, delimiter...)
	}
	v.buf = append(v.buf, data...)
}

// Clear empties the value, keeping owned storage for reuse.
func (v *Value) Clear() {
	if v.typ == Owned {
		v.buf = v.buf[:0]
		return
	}
	v.buf = nil
}

// owned returns an empty slice that is safe to write, with at least size bytes of capacity.
func (v *Value) owned(size int) []byte {
	if v.typ == Owned && cap(v.buf) >= size {
		return v.buf[:0]
	}
	return make([]byte, 0, size)
}

// Size returns the length of the value in bytes.
func (v *Value) Size() uint64 {
	return uint64(len(v.buf))
}

// Empty reports whether the value has no bytes.
func (v *Value) Empty() bool {
	return len(v.buf) == 0
}

// Type returns the storage mode.
func (v *Value) Type() ValueType {
	return v.typ
}

// Bytes returns the stored bytes. The slice is only valid until the next mutation,
// and must not be modified.
func (v *Value) Bytes() []byte {
	return v.buf
}

// String returns a copy of the stored bytes.
func (v *Value) String() string {
	return string(v.buf)
}
