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

package config

import (
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/types"
)

func TestDefaultHeaderConfig(t *testing.T) {
	cfg := DefaultHeaderConfig()
	assert.Equal(t, uint64(60*1024), cfg.RequestLimit())
	assert.Equal(t, uint64(60*1024), cfg.ResponseLimit())
	assert.Equal(t, []header.Key{header.NewKey(types.MosnHeaderPrefix)}, cfg.Prefixes())
}

func TestLoadJSON(t *testing.T) {
	cfg, err := Load("testdata/headers.json")
	require.NoError(t, err)
	assert.Equal(t, 8*datasize.KB, cfg.MaxRequestHeaders)
	assert.Equal(t, uint64(16*1024), cfg.ResponseLimit())
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	prefixes := cfg.Prefixes()
	require.Len(t, prefixes, 2)
	assert.Equal(t, "x-internal-", prefixes[1].Get())
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load("testdata/headers.yaml")
	require.NoError(t, err)
	assert.Equal(t, uint64(1024*1024), cfg.RequestLimit())
	// unset fields get defaults
	assert.Equal(t, DefaultMaxHeaderSize, cfg.MaxResponseHeaders)
	assert.Equal(t, []string{"x-internal-"}, cfg.StripPrefixes)
}

func TestLoadError(t *testing.T) {
	_, err := Load("testdata/not_exists.json")
	assert.Error(t, err)
	_, err = Load("testdata/broken.yml")
	assert.Error(t, err)
	_, err = Parse([]byte(`{"max_request_headers": "many"}`), false)
	assert.Error(t, err)
}

func TestPrefixesSkipEmpty(t *testing.T) {
	cfg := &HeaderConfig{StripPrefixes: []string{"", "X-A-"}}
	keys := cfg.Prefixes()
	require.Len(t, keys, 1)
	assert.Equal(t, "x-a-", keys[0].Get())
}
