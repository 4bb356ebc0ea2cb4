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

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosn.io/headermap/pkg/config"
)

func TestDump(t *testing.T) {
	f, err := os.Open("testdata/request.txt")
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	require.NoError(t, dump(&out, f, config.DefaultHeaderConfig(), dumpOptions{strip: true}))
	expected := "stripped 1 headers\n" +
		"HeaderMap variant=request_headers len=4 byte_size=49\n" +
		"  ':method', 'GET'\n" +
		"  ':path', '/api'\n" +
		"  ':authority', 'example.com'\n" +
		"  'accept', '*/*'\n"
	assert.Equal(t, expected, out.String())
}

func TestDumpOverflow(t *testing.T) {
	cfg := config.DefaultHeaderConfig()
	cfg.MaxRequestHeaders = 10
	err := dump(&bytes.Buffer{}, strings.NewReader("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"), cfg, dumpOptions{})
	assert.Error(t, err)
}

func TestDumpInvalidHead(t *testing.T) {
	err := dump(&bytes.Buffer{}, strings.NewReader("not http"), config.DefaultHeaderConfig(), dumpOptions{response: true})
	assert.Error(t, err)
}

func TestAppCommands(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	require.NoError(t, app.Run([]string{"headermap", "variants"}))
	assert.Contains(t, out.String(), "response_trailers (2): grpc-status grpc-message")
	assert.Contains(t, out.String(), "request_trailers (0): ")

	out.Reset()
	require.NoError(t, app.Run([]string{"headermap", "dump", "testdata/request.txt"}))
	assert.Contains(t, out.String(), "'x-mosn-stream-id', '7'")
}

func TestDumpFormat(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nX-A: b\r\n\r\n"
	var out bytes.Buffer
	require.NoError(t, dump(&out, strings.NewReader(raw), config.DefaultHeaderConfig(), dumpOptions{
		response: true,
		format:   "{{key}}={{value}} ({{type}})",
	}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, ":status=200 (owned)", lines[0])
	assert.Contains(t, lines, "x-a=b (owned)")
	assert.Contains(t, lines, "content-type=text/plain (owned)")
}

func TestDumpRequestID(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, dump(&out, strings.NewReader("GET / HTTP/1.1\r\nHost: a\r\n\r\n"), config.DefaultHeaderConfig(), dumpOptions{
		requestID: true,
		format:    "{{key}}",
	}))
	assert.Equal(t, ":method\n:path\n:authority\nx-request-id\n", out.String())
}

func TestDumpMetrics(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	require.NoError(t, app.Run([]string{"headermap", "dump", "--metrics", "--format", "{{key}}", "testdata/request.txt"}))
	assert.Contains(t, out.String(), "headermap_header_decode_total")
}
