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

package message

import (
	"mosn.io/api"
	"mosn.io/pkg/buffer"

	"mosn.io/headermap/pkg/header"
)

// Message is a whole HTTP message: headers, an optional body and optional
// trailers. It does not support streaming.
type Message struct {
	headers  *header.Map
	body     api.IoBuffer
	trailers *header.Map
	// variant of the trailers created by AddTrailers
	trailerVariant *header.Variant
}

// NewRequestMessage returns a request message with empty headers.
func NewRequestMessage() *Message {
	return NewMessage(header.NewRequestHeaderMap())
}

// NewResponseMessage returns a response message with empty headers.
func NewResponseMessage() *Message {
	return NewMessage(header.NewResponseHeaderMap())
}

// NewMessage returns a message owning headers. The trailers variant follows
// the headers one.
func NewMessage(headers *header.Map) *Message {
	tv := header.RequestTrailers
	if headers.Variant() == header.ResponseHeaders {
		tv = header.ResponseTrailers
	}
	return &Message{
		headers:        headers,
		trailerVariant: tv,
	}
}

// Headers returns the headers of the message.
func (m *Message) Headers() *header.Map {
	return m.headers
}

// Body returns the body, nil when there is none.
func (m *Message) Body() api.IoBuffer {
	return m.body
}

// SetBody replaces the body.
func (m *Message) SetBody(body api.IoBuffer) {
	m.body = body
}

// SetBodyString replaces the body with a copy of s.
func (m *Message) SetBodyString(s string) {
	m.body = buffer.NewIoBufferString(s)
}

// Trailers returns the trailers, nil when there are none.
func (m *Message) Trailers() *header.Map {
	return m.trailers
}

// SetTrailers replaces the trailers.
func (m *Message) SetTrailers(trailers *header.Map) {
	m.trailers = trailers
}

// AddTrailers returns the trailers, creating empty ones first if needed.
func (m *Message) AddTrailers() *header.Map {
	if m.trailers == nil {
		m.trailers = header.NewMap(m.trailerVariant)
	}
	return m.trailers
}

// BodyAsString returns the body as a string, "" when there is none.
func (m *Message) BodyAsString() string {
	if m.body == nil {
		return ""
	}
	return m.body.String()
}
