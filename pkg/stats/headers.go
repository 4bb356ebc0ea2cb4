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

package stats

import (
	metrics "github.com/rcrowley/go-metrics"
)

// HeaderType is the metrics type of the header codecs
const HeaderType = "header"

// metrics keys of HeaderType
const (
	HeaderDecodeTotal = "decode_total"
	HeaderDecodeBytes = "decode_bytes"
	HeaderOverflow    = "overflow"
	HeaderStripped    = "stripped"
)

// HeaderStats counts the header maps decoded by a protocol.
type HeaderStats struct {
	DecodeTotal metrics.Counter
	DecodeBytes metrics.Histogram
	Overflow    metrics.Counter
	Stripped    metrics.Counter
}

// NewHeaderStats returns the header stats of protocol.
func NewHeaderStats(protocol string) *HeaderStats {
	s := NewStats(HeaderType, protocol)
	return &HeaderStats{
		DecodeTotal: s.Counter(HeaderDecodeTotal),
		DecodeBytes: s.Histogram(HeaderDecodeBytes),
		Overflow:    s.Counter(HeaderOverflow),
		Stripped:    s.Counter(HeaderStripped),
	}
}
