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

package http

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/log"
	"mosn.io/headermap/pkg/protocol"
	"mosn.io/headermap/pkg/stats"
	"mosn.io/headermap/pkg/types"
)

var (
	headerStats = stats.NewHeaderStats(string(protocol.HTTP1))
	hostKey     = header.NewKey(types.HeaderHost)
)

// DecodeRequestHeader converts a fasthttp request header into a request header map.
// The pseudo headers :method, :path and :authority are set first, the other
// headers are copied in order with lower-cased names.
func DecodeRequestHeader(in *fasthttp.RequestHeader, limit uint64) (*header.Map, error) {
	m := header.NewRequestHeaderMap()
	m.SetInline(header.Method, string(in.Method()))
	m.SetInline(header.Path, string(in.RequestURI()))
	if host := in.Host(); len(host) > 0 {
		m.SetInline(header.Host, string(host))
	}
	if err := decodeHeaders(m, in.VisitAll, limit); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeResponseHeader converts a fasthttp response header into a response header map.
func DecodeResponseHeader(in *fasthttp.ResponseHeader, limit uint64) (*header.Map, error) {
	m := header.NewResponseHeaderMap()
	m.SetInlineInteger(header.Status, uint64(in.StatusCode()))
	if err := decodeHeaders(m, in.VisitAll, limit); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeHeaders(m *header.Map, visitAll func(func(key, value []byte)), limit uint64) error {
	var err error
	visitAll(func(key, value []byte) {
		if err != nil {
			return
		}
		k := header.NewKey(string(key))
		// host is decoded as :authority
		if k == hostKey {
			return
		}
		m.AddCopy(k, string(value))
		err = protocol.CheckHeaderSize(m, limit)
	})
	if err == nil {
		err = protocol.CheckHeaderSize(m, limit)
	}
	if err != nil {
		headerStats.Overflow.Inc(1)
		log.DefaultLogger.Errorf("[protocol] [http1] decode header failed, limit %d, error: %v", limit, err)
		return err
	}
	headerStats.DecodeTotal.Inc(1)
	headerStats.DecodeBytes.Update(int64(m.ByteSize()))
	return nil
}

// EncodeRequestHeader writes a request header map into out.
func EncodeRequestHeader(m *header.Map, out *fasthttp.RequestHeader) {
	m.Iterate(func(e *header.Entry) bool {
		switch e.Key() {
		case types.HeaderMethod:
			out.SetMethod(e.Value())
		case types.HeaderPath:
			out.SetRequestURI(e.Value())
		case types.HeaderAuthority:
			out.SetHost(e.Value())
		default:
			if !e.IsPseudo() {
				out.Add(e.Key(), e.Value())
			}
		}
		return true
	})
}

// EncodeResponseHeader writes a response header map into out.
// The :status must be a valid status code.
func EncodeResponseHeader(m *header.Map, out *fasthttp.ResponseHeader) error {
	var err error
	m.Iterate(func(e *header.Entry) bool {
		if e.Key() == types.HeaderStatus {
			code, perr := strconv.Atoi(e.Value())
			if perr != nil {
				err = errors.Wrapf(perr, "[protocol] [http1] invalid status %q", e.Value())
				return false
			}
			out.SetStatusCode(code)
			return true
		}
		if !e.IsPseudo() {
			out.Add(e.Key(), e.Value())
		}
		return true
	})
	return err
}
