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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/protocol"
)

func TestFromMetadata(t *testing.T) {
	md := metadata.Pairs("X-B", "2", "x-a", "1", "x-b", "3")
	m, err := FromMetadata(header.RequestHeaders, md, 0)
	require.NoError(t, err)
	var kvs []string
	m.Iterate(func(e *header.Entry) bool {
		kvs = append(kvs, e.Key()+"="+e.Value())
		return true
	})
	assert.Equal(t, []string{"x-a=1", "x-b=2", "x-b=3"}, kvs)

	_, err = FromMetadata(header.RequestHeaders, md, 4)
	assert.True(t, protocol.IsHeaderOverflow(err))
}

func TestToMetadata(t *testing.T) {
	m := header.NewRequestHeaderMap()
	m.SetInline(header.Path, "/pkg.Service/Method")
	m.SetInline(header.GrpcTimeout, "1S")
	m.AddCopy(header.NewKey("x-a"), "1")
	m.AddCopy(header.NewKey("x-a"), "2")

	md := ToMetadata(m)
	assert.Equal(t, metadata.MD{
		"grpc-timeout": {"1S"},
		"x-a":          {"1", "2"},
	}, md)
}

func TestIncomingContext(t *testing.T) {
	m, err := FromIncomingContext(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.True(t, m.Empty())
	assert.Equal(t, header.RequestHeaders, m.Variant())

	src := header.NewRequestHeaderMap()
	src.SetInline(header.UserAgent, "grpc-go")
	ctx := NewIncomingContext(context.Background(), src)
	m, err = FromIncomingContext(ctx, 0)
	require.NoError(t, err)
	assert.True(t, src.Equal(m))
	assert.Equal(t, "grpc-go", m.GetInline(header.UserAgent).Value())
}

func TestStatus(t *testing.T) {
	m := header.NewResponseTrailerMap()
	_, err := GetStatus(m)
	assert.Equal(t, ErrNoGrpcStatus, err)

	SetStatus(m, status.New(codes.NotFound, "missing"))
	s, err := GetStatus(m)
	require.NoError(t, err)
	assert.Equal(t, codes.NotFound, s.Code())
	assert.Equal(t, "missing", s.Message())
	assert.Equal(t, "5", m.GetInline(header.GrpcStatus).Value())

	SetStatus(m, status.New(codes.OK, ""))
	assert.Nil(t, m.GetInline(header.GrpcMessage))
	assert.Equal(t, 1, m.Len())
	assert.NoError(t, m.VerifyByteSize())

	m.SetInline(header.GrpcStatus, "x")
	_, err = GetStatus(m)
	assert.Error(t, err)
}
