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

package log

import (
	"strings"

	"mosn.io/pkg/log"
)

var (
	// DefaultLogger is used by all the packages to log common messages.
	DefaultLogger log.ErrorLogger
	// StartLogger is used while loading configuration, before DefaultLogger is set up.
	StartLogger log.ErrorLogger
)

func init() {
	DefaultLogger = log.DefaultLogger
	StartLogger = log.DefaultLogger
}

// InitDefaultLogger replaces DefaultLogger with a logger writing to output.
func InitDefaultLogger(output string, level log.Level) error {
	lg, err := CreateDefaultErrorLogger(output, level)
	if err != nil {
		return err
	}
	DefaultLogger = lg
	return nil
}

// ParseLevel converts a level name, like "debug", to a log level.
// Unknown names fall back to INFO.
func ParseLevel(level string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "FATAL":
		return log.FATAL
	case "ERROR":
		return log.ERROR
	case "WARN", "WARNING":
		return log.WARN
	case "DEBUG":
		return log.DEBUG
	case "TRACE":
		return log.TRACE
	default:
		return log.INFO
	}
}
