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
	"strconv"

	"github.com/pkg/errors"

	"mosn.io/headermap/pkg/header"
)

// StatusCode returns the :status of a response header map.
func StatusCode(m *header.Map) (int, error) {
	e := m.GetInline(header.Status)
	if e == nil {
		return 0, ErrNoStatus
	}
	code, err := strconv.Atoi(e.Value())
	if err != nil {
		return 0, errors.Wrapf(err, "invalid status %q", e.Value())
	}
	return code, nil
}
