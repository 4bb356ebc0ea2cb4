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
	"io"
	"strings"

	"github.com/pkg/errors"
)

// VerifyByteSize recomputes the byte size of m from its entries and compares it
// with the cached one. It is a verification hook for tests, the cached size is
// always exact on a correct map.
func (m *Map) VerifyByteSize() error {
	var size uint64
	m.Iterate(func(e *Entry) bool {
		size += e.size()
		return true
	})
	if size != m.cachedByteSize {
		return errors.Errorf("[header] [verify] byte size mismatch, cached %d, computed %d", m.cachedByteSize, size)
	}
	return nil
}

// DumpState writes a human readable view of m to w.
func (m *Map) DumpState(w io.Writer, indent int) {
	spaces := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%sHeaderMap variant=%s len=%d byte_size=%d\n", spaces, m.variant.name, m.Len(), m.cachedByteSize)
	m.Iterate(func(e *Entry) bool {
		fmt.Fprintf(w, "%s  '%s', '%s'\n", spaces, e.Key(), e.ValueBytes())
		return true
	})
}
