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

package header

import "strings"

// Key is an immutable, lower-cased header name.
type Key struct {
	name string
}

// NewKey returns a Key for name, lower-casing it when needed.
func NewKey(name string) Key {
	return Key{name: strings.ToLower(name)}
}

// Get returns the lower-cased name.
func (k Key) Get() string {
	return k.name
}

// IsPseudo reports whether k is a pseudo header name, like ":path".
func (k Key) IsPseudo() bool {
	return isPseudoHeader(k.name)
}

func (k Key) String() string {
	return k.name
}

func isPseudoHeader(name string) bool {
	return len(name) > 0 && name[0] == ':'
}
