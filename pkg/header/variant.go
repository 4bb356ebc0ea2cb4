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
	"sort"

	"github.com/armon/go-radix"
)

// Variant is the set of well-known headers a kind of map exposes as inline
// slots. Variants are built once at init and never modified, so they are
// shared by every map without locking.
type Variant struct {
	name    string
	inlines []*Inline
	// slots maps an Inline id to its slot index, noSlot when not carried
	slots []int
	// table maps a header name to its slot index
	table *radix.Tree
}

// The map variants.
var (
	RequestHeaders   = newVariant("request_headers", requestInlines, requestResponseInlines)
	RequestTrailers  = newVariant("request_trailers")
	ResponseHeaders  = newVariant("response_headers", responseInlines, requestResponseInlines, responseTrailerInlines)
	ResponseTrailers = newVariant("response_trailers", responseTrailerInlines)
)

var variants = make(map[string]*Variant)

func newVariant(name string, groups ...[]*Inline) *Variant {
	v := &Variant{
		name:  name,
		slots: make([]int, len(inlines)),
		table: radix.New(),
	}
	for i := range v.slots {
		v.slots[i] = noSlot
	}
	for _, group := range groups {
		for _, h := range group {
			if v.slots[h.id] != noSlot {
				continue
			}
			slot := len(v.inlines)
			v.inlines = append(v.inlines, h)
			v.slots[h.id] = slot
			v.table.Insert(h.name.Get(), slot)
		}
	}
	variants[name] = v
	return v
}

// GetVariant returns the variant registered with name.
func GetVariant(name string) (*Variant, bool) {
	v, ok := variants[name]
	return v, ok
}

// Variants returns all variants, sorted by name.
func Variants() []*Variant {
	vs := make([]*Variant, 0, len(variants))
	for _, v := range variants {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		return vs[i].name < vs[j].name
	})
	return vs
}

// Name returns the variant name.
func (v *Variant) Name() string {
	return v.name
}

// Inlines returns the descriptors of the variant in slot order.
func (v *Variant) Inlines() []*Inline {
	hs := make([]*Inline, len(v.inlines))
	copy(hs, v.inlines)
	return hs
}

// Supports reports whether maps of this variant keep a slot for h.
func (v *Variant) Supports(h *Inline) bool {
	return v.slotOf(h) != noSlot
}

func (v *Variant) slotCount() int {
	return len(v.inlines)
}

func (v *Variant) slotOf(h *Inline) int {
	if h == nil || h.id >= len(v.slots) {
		return noSlot
	}
	return v.slots[h.id]
}

// lookup matches the whole name against the table, a prefix of a
// well-known name is not a match.
func (v *Variant) lookup(name string) int {
	if slot, ok := v.table.Get(name); ok {
		return slot.(int)
	}
	return noSlot
}

func (v *Variant) String() string {
	return v.name
}
