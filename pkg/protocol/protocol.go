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
	"github.com/pkg/errors"
	"mosn.io/api"

	"mosn.io/headermap/pkg/header"
)

// protocols decoded into header maps
const (
	HTTP1 api.ProtocolName = "Http1"
	HTTP2 api.ProtocolName = "Http2"
)

var (
	ErrHeaderOverflow = errors.New("header size overflow")
	ErrNoStatus       = errors.New("headers have no status code")
)

// CheckHeaderSize returns ErrHeaderOverflow if the byte size of m exceeds limit.
// A zero limit means no limit.
func CheckHeaderSize(m *header.Map, limit uint64) error {
	if limit > 0 && m.ByteSize() > limit {
		return errors.Wrapf(ErrHeaderOverflow, "%d bytes exceed the limit %d", m.ByteSize(), limit)
	}
	return nil
}

// IsHeaderOverflow reports whether err is caused by ErrHeaderOverflow.
func IsHeaderOverflow(err error) bool {
	return err != nil && errors.Cause(err) == ErrHeaderOverflow
}
