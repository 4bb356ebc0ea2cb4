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
	"strconv"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mosn.io/headermap/pkg/header"
)

// ErrNoGrpcStatus is returned if a map has no grpc-status.
var ErrNoGrpcStatus = errors.New("no grpc-status")

// GetStatus reads grpc-status and grpc-message from m, usually the response
// trailers.
func GetStatus(m *header.Map) (*status.Status, error) {
	e := m.GetInline(header.GrpcStatus)
	if e == nil {
		return nil, ErrNoGrpcStatus
	}
	code, err := strconv.ParseUint(e.Value(), 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid grpc-status %q", e.Value())
	}
	var msg string
	if e := m.GetInline(header.GrpcMessage); e != nil {
		msg = e.Value()
	}
	return status.New(codes.Code(code), msg), nil
}

// SetStatus writes s into m as grpc-status and grpc-message.
// grpc-message is removed when s has no message.
func SetStatus(m *header.Map, s *status.Status) {
	m.SetInlineInteger(header.GrpcStatus, uint64(s.Code()))
	if s.Message() == "" {
		m.RemoveInline(header.GrpcMessage)
		return
	}
	m.SetInline(header.GrpcMessage, s.Message())
}
