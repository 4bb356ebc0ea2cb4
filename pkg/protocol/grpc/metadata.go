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

package grpc

import (
	"context"
	"sort"

	"google.golang.org/grpc/metadata"

	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/log"
	"mosn.io/headermap/pkg/protocol"
)

// FromMetadata converts gRPC metadata into a map of variant v.
// Metadata keys are unordered, they are added in lexical order.
func FromMetadata(v *header.Variant, md metadata.MD, limit uint64) (*header.Map, error) {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	m := header.NewMap(v)
	for _, k := range keys {
		key := header.NewKey(k)
		for _, value := range md[k] {
			m.AddCopy(key, value)
		}
		if err := protocol.CheckHeaderSize(m, limit); err != nil {
			log.DefaultLogger.Errorf("[protocol] [grpc] convert metadata failed, limit %d, error: %v", limit, err)
			return nil, err
		}
	}
	return m, nil
}

// ToMetadata converts the regular headers of m into gRPC metadata, pseudo
// headers are skipped.
func ToMetadata(m *header.Map) metadata.MD {
	md := metadata.MD{}
	m.Iterate(func(e *header.Entry) bool {
		if !e.IsPseudo() {
			md.Append(e.Key(), e.Value())
		}
		return true
	})
	return md
}

// NewIncomingContext attaches the headers of m to ctx as incoming metadata.
func NewIncomingContext(ctx context.Context, m *header.Map) context.Context {
	return metadata.NewIncomingContext(ctx, ToMetadata(m))
}

// FromIncomingContext returns the incoming metadata of ctx as a request header
// map, which is empty if ctx carries no metadata.
func FromIncomingContext(ctx context.Context, limit uint64) (*header.Map, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return header.NewRequestHeaderMap(), nil
	}
	return FromMetadata(header.RequestHeaders, md, limit)
}
