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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2/hpack"

	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/protocol"
)

func TestDecodeHeaderFields(t *testing.T) {
	fields := []hpack.HeaderField{
		{Name: "accept", Value: "*/*"},
		{Name: ":method", Value: "GET"},
		{Name: ":path", Value: "/"},
		{Name: "X-Trace", Value: "t1"},
	}
	m, err := DecodeHeaderFields(header.RequestHeaders, fields, 0)
	require.NoError(t, err)
	assert.Equal(t, []hpack.HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":path", Value: "/"},
		{Name: "accept", Value: "*/*"},
		{Name: "x-trace", Value: "t1"},
	}, EncodeHeaderFields(m, nil))
	assert.Equal(t, "GET", m.GetInline(header.Method).Value())
	assert.Equal(t, uint64(7+3+5+1+6+3+7+2), m.ByteSize())
}

func TestDecodeHeaderFieldsOverflow(t *testing.T) {
	fields := []hpack.HeaderField{
		{Name: ":status", Value: "200"},
		{Name: "x-big", Value: string(bytes.Repeat([]byte("a"), 100))},
	}
	_, err := DecodeHeaderFields(header.ResponseHeaders, fields, 50)
	assert.True(t, protocol.IsHeaderOverflow(err))
}

func TestTrailersRoundTrip(t *testing.T) {
	// encode and decode through a real hpack block
	var buf bytes.Buffer
	enc := hpack.NewEncoder(&buf)
	require.NoError(t, enc.WriteField(hpack.HeaderField{Name: "grpc-status", Value: "0"}))
	require.NoError(t, enc.WriteField(hpack.HeaderField{Name: "grpc-message", Value: "ok"}))
	fields, err := hpack.NewDecoder(4096, nil).DecodeFull(buf.Bytes())
	require.NoError(t, err)

	m, err := DecodeHeaderFields(header.ResponseTrailers, fields, 0)
	require.NoError(t, err)
	assert.Equal(t, "0", m.GetInline(header.GrpcStatus).Value())
	assert.Equal(t, "ok", m.GetInline(header.GrpcMessage).Value())

	out := EncodeHeaderFields(m, []hpack.HeaderField{{Name: "keep", Value: "1"}})
	assert.Len(t, out, 3)
	assert.Equal(t, "grpc-status", out[1].Name)
}
