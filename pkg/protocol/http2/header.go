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

package http2

import (
	"golang.org/x/net/http2/hpack"

	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/log"
	"mosn.io/headermap/pkg/protocol"
	"mosn.io/headermap/pkg/stats"
)

var headerStats = stats.NewHeaderStats(string(protocol.HTTP2))

// DecodeHeaderFields converts the decoded fields of a HEADERS frame into a map
// of variant v. Field names are lower-cased, values are copied.
func DecodeHeaderFields(v *header.Variant, fields []hpack.HeaderField, limit uint64) (*header.Map, error) {
	m := header.NewMap(v)
	for _, f := range fields {
		m.AddCopy(header.NewKey(f.Name), f.Value)
		if err := protocol.CheckHeaderSize(m, limit); err != nil {
			headerStats.Overflow.Inc(1)
			log.DefaultLogger.Errorf("[protocol] [http2] decode %s failed, limit %d, error: %v", v.Name(), limit, err)
			return nil, err
		}
	}
	headerStats.DecodeTotal.Inc(1)
	headerStats.DecodeBytes.Update(int64(m.ByteSize()))
	return m, nil
}

// EncodeHeaderFields appends the headers of m to dst in map order, pseudo
// headers first.
func EncodeHeaderFields(m *header.Map, dst []hpack.HeaderField) []hpack.HeaderField {
	m.Iterate(func(e *header.Entry) bool {
		dst = append(dst, hpack.HeaderField{Name: e.Key(), Value: e.Value()})
		return true
	})
	return dst
}
