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

package protocol

import (
	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/log"
	"mosn.io/headermap/pkg/stats"
	"mosn.io/headermap/pkg/types"
)

var internalPrefix = header.NewKey(types.MosnHeaderPrefix)

// StripInternalHeaders removes the headers starting with any of prefixes,
// the x-mosn- headers are removed if no prefix is given.
// It returns the number of removed headers.
func StripInternalHeaders(m *header.Map, prefixes ...header.Key) int {
	if len(prefixes) == 0 {
		prefixes = []header.Key{internalPrefix}
	}
	removed := 0
	for _, prefix := range prefixes {
		removed += m.RemovePrefix(prefix)
	}
	if removed > 0 {
		stats.NewHeaderStats(m.Variant().Name()).Stripped.Inc(int64(removed))
		log.DefaultLogger.Debugf("[protocol] [strip] %d headers removed from %s map", removed, m.Variant().Name())
	}
	return removed
}
