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
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var propertyNames = []string{
	":method", ":path", ":authority", ":status", ":custom",
	"accept", "content-length", "via", "grpc-status", "x-mosn-retry-on",
	"x-mosn-custom", "x-a", "x-b", "cookie",
}

// checkMap verifies the ordering, size and slot invariants of m.
func checkMap(t *testing.T, m *Map, op string) {
	t.Helper()
	require.NoError(t, m.VerifyByteSize(), op)

	seenRegular := false
	count := 0
	m.Iterate(func(e *Entry) bool {
		count++
		if e.IsPseudo() {
			require.False(t, seenRegular, "%s: pseudo header %s after a regular one", op, e.Key())
		} else {
			seenRegular = true
		}
		return true
	})
	require.Equal(t, m.Len(), count, op)

	for _, h := range m.variant.inlines {
		require.True(t, m.GetInline(h) == m.scan(h.name.Get()), "%s: slot of %s", op, h)
	}
}

func randomOp(r *rand.Rand, m *Map) string {
	key := NewKey(propertyNames[r.Intn(len(propertyNames))])
	value := fmt.Sprintf("v%d", r.Intn(1000))
	inline := inlines[r.Intn(len(inlines))]

	switch r.Intn(15) {
	case 0:
		m.AddCopy(key, value)
		return "AddCopy " + key.Get()
	case 1:
		m.AddReference(key, []byte(value))
		return "AddReference " + key.Get()
	case 2:
		m.AddReferenceKeyInteger(key, r.Uint64())
		return "AddReferenceKeyInteger " + key.Get()
	case 3:
		m.AppendCopy(key, value)
		return "AppendCopy " + key.Get()
	case 4:
		m.SetCopy(key, value)
		return "SetCopy " + key.Get()
	case 5:
		m.SetReference(key, []byte(value))
		return "SetReference " + key.Get()
	case 6:
		m.Remove(key)
		return "Remove " + key.Get()
	case 7:
		m.RemovePrefix(NewKey(key.Get()[:1+r.Intn(len(key.Get()))]))
		return "RemovePrefix " + key.Get()
	case 8:
		m.SetInline(inline, value)
		return "SetInline " + inline.String()
	case 9:
		m.SetInlineInteger(inline, uint64(r.Intn(100000)))
		return "SetInlineInteger " + inline.String()
	case 10:
		m.AppendInline(inline, value, "; ")
		return "AppendInline " + inline.String()
	case 11:
		m.SetReferenceInline(inline, []byte(value))
		return "SetReferenceInline " + inline.String()
	case 12:
		m.RemoveInline(inline)
		return "RemoveInline " + inline.String()
	case 13:
		if r.Intn(20) == 0 {
			m.Clear()
			return "Clear"
		}
		m.AddCopyInteger(key, uint64(r.Intn(10)))
		return "AddCopyInteger " + key.Get()
	default:
		m.AddReferenceKey(key, value)
		return "AddReferenceKey " + key.Get()
	}
}

func TestMapRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(20201016))
	for _, v := range Variants() {
		m := NewMap(v)
		for i := 0; i < 3000; i++ {
			op := randomOp(r, m)
			checkMap(t, m, fmt.Sprintf("%s #%d %s", v.Name(), i, op))
		}
		cp := CreateHeaderMapFrom(v, m)
		require.True(t, cp.Equal(m))
		checkMap(t, cp, "copy")
	}
}
