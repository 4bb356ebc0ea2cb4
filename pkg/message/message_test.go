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
	"testing"

	"github.com/stretchr/testify/assert"
	"mosn.io/pkg/buffer"

	"mosn.io/headermap/pkg/header"
)

func TestRequestMessage(t *testing.T) {
	msg := NewRequestMessage()
	assert.True(t, msg.Headers().Variant() == header.RequestHeaders)
	assert.Nil(t, msg.Body())
	assert.Nil(t, msg.Trailers())
	assert.Equal(t, "", msg.BodyAsString())

	msg.Headers().SetInline(header.Method, "POST")
	msg.SetBodyString("hello")
	assert.Equal(t, "hello", msg.BodyAsString())

	trailers := msg.AddTrailers()
	assert.True(t, trailers.Variant() == header.RequestTrailers)
	assert.True(t, trailers == msg.AddTrailers())
}

func TestResponseMessage(t *testing.T) {
	msg := NewResponseMessage()
	msg.Headers().SetInlineInteger(header.Status, 200)
	msg.SetBody(buffer.NewIoBufferBytes([]byte("body")))
	assert.Equal(t, "body", msg.BodyAsString())

	trailers := msg.AddTrailers()
	assert.True(t, trailers.Variant() == header.ResponseTrailers)
	trailers.SetInline(header.GrpcStatus, "0")
	assert.Equal(t, "0", msg.Trailers().GetInline(header.GrpcStatus).Value())

	msg.SetTrailers(nil)
	assert.Nil(t, msg.Trailers())
}

func TestMessageFromHeaders(t *testing.T) {
	headers := header.CreateHeaderMap(header.ResponseHeaders, header.KeyValue{Key: header.NewKey(":status"), Value: "204"})
	msg := NewMessage(headers)
	assert.True(t, msg.Headers() == headers)
	assert.True(t, msg.AddTrailers().Variant() == header.ResponseTrailers)
}
