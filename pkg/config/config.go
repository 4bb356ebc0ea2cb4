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
	"io/ioutil"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/ghodss/yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/log"
	"mosn.io/headermap/pkg/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultMaxHeaderSize is the default limit of a decoded header map
const DefaultMaxHeaderSize = 60 * datasize.KB

// HeaderConfig configures the header codecs.
type HeaderConfig struct {
	MaxRequestHeaders  datasize.ByteSize `json:"max_request_headers,omitempty"`
	MaxResponseHeaders datasize.ByteSize `json:"max_response_headers,omitempty"`
	// StripPrefixes are removed from the decoded maps, internal headers are
	// stripped when it is empty
	StripPrefixes []string `json:"strip_prefixes,omitempty"`
	LogLevel      string   `json:"log_level,omitempty"`
}

// DefaultHeaderConfig returns a config with the default limits.
func DefaultHeaderConfig() *HeaderConfig {
	cfg := &HeaderConfig{}
	cfg.setDefaults()
	return cfg
}

func (c *HeaderConfig) setDefaults() {
	if c.MaxRequestHeaders == 0 {
		c.MaxRequestHeaders = DefaultMaxHeaderSize
	}
	if c.MaxResponseHeaders == 0 {
		c.MaxResponseHeaders = DefaultMaxHeaderSize
	}
	if len(c.StripPrefixes) == 0 {
		c.StripPrefixes = []string{types.MosnHeaderPrefix}
	}
}

// Prefixes returns the strip prefixes as lower-cased keys.
func (c *HeaderConfig) Prefixes() []header.Key {
	keys := make([]header.Key, 0, len(c.StripPrefixes))
	for _, p := range c.StripPrefixes {
		if p == "" {
			continue
		}
		keys = append(keys, header.NewKey(p))
	}
	return keys
}

// RequestLimit returns the request header limit in bytes.
func (c *HeaderConfig) RequestLimit() uint64 {
	return c.MaxRequestHeaders.Bytes()
}

// ResponseLimit returns the response header limit in bytes.
func (c *HeaderConfig) ResponseLimit() uint64 {
	return c.MaxResponseHeaders.Bytes()
}

// Parse parses a json or yaml content into a HeaderConfig.
func Parse(content []byte, isYaml bool) (*HeaderConfig, error) {
	if isYaml {
		bytes, err := yaml.YAMLToJSON(content)
		if err != nil {
			return nil, errors.Wrap(err, "translate yaml to json failed")
		}
		content = bytes
	}
	cfg := &HeaderConfig{}
	if err := json.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "json unmarshal config failed")
	}
	cfg.setDefaults()
	return cfg, nil
}

// Load reads the config file at path, the format is chosen by the extension.
func Load(path string) (*HeaderConfig, error) {
	log.StartLogger.Infof("[config] [load] load config from: %s", path)
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[config] [load] read %s failed", path)
	}
	cfg, err := Parse(content, yamlFormat(path))
	if err != nil {
		return nil, errors.Wrapf(err, "[config] [load] parse %s failed", path)
	}
	log.StartLogger.Infof("[config] [load] max request headers %s, max response headers %s, strip prefixes %v",
		cfg.MaxRequestHeaders, cfg.MaxResponseHeaders, cfg.StripPrefixes)
	return cfg, nil
}

func yamlFormat(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}
