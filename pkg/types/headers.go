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

package types

// Pseudo headers, see RFC 7540 section 8.1.2.
const (
	HeaderAuthority = ":authority"
	HeaderMethod    = ":method"
	HeaderPath      = ":path"
	HeaderScheme    = ":scheme"
	HeaderProtocol  = ":protocol"
	HeaderStatus    = ":status"
)

// Common HTTP headers, all names are lower-cased.
const (
	HeaderAccept                        = "accept"
	HeaderAccessControlRequestMethod    = "access-control-request-method"
	HeaderAccessControlAllowCredentials = "access-control-allow-credentials"
	HeaderAccessControlAllowHeaders     = "access-control-allow-headers"
	HeaderAccessControlAllowMethods     = "access-control-allow-methods"
	HeaderAccessControlAllowOrigin      = "access-control-allow-origin"
	HeaderAccessControlExposeHeaders    = "access-control-expose-headers"
	HeaderAccessControlMaxAge           = "access-control-max-age"
	HeaderAuthorization                 = "authorization"
	HeaderCacheControl                  = "cache-control"
	HeaderConnection                    = "connection"
	HeaderContentLength                 = "content-length"
	HeaderContentType                   = "content-type"
	HeaderDate                          = "date"
	HeaderEtag                          = "etag"
	HeaderExpect                        = "expect"
	HeaderHost                          = "host"
	HeaderKeepAlive                     = "keep-alive"
	HeaderLocation                      = "location"
	HeaderOrigin                        = "origin"
	HeaderProxyConnection               = "proxy-connection"
	HeaderReferer                       = "referer"
	HeaderServer                        = "server"
	HeaderTE                            = "te"
	HeaderTransferEncoding              = "transfer-encoding"
	HeaderUpgrade                       = "upgrade"
	HeaderUserAgent                     = "user-agent"
	HeaderVia                           = "via"
	HeaderForwardedFor                  = "x-forwarded-for"
	HeaderForwardedHost                 = "x-forwarded-host"
	HeaderForwardedProto                = "x-forwarded-proto"
	HeaderRequestID                     = "x-request-id"
)

// gRPC headers
const (
	HeaderGrpcAcceptEncoding = "grpc-accept-encoding"
	HeaderGrpcTimeout        = "grpc-timeout"
	HeaderGrpcStatus         = "grpc-status"
	HeaderGrpcMessage        = "grpc-message"
)

// Proxy control headers. Every header with the MosnHeaderPrefix is internal
// and is stripped before a message leaves the proxy.
const (
	MosnHeaderPrefix             = "x-mosn-"
	MosnStreamID                 = "x-mosn-streamid"
	MosnGlobalTimeout            = "x-mosn-global-timeout"
	MosnTryTimeout               = "x-mosn-try-timeout"
	MosnRetryOn                  = "x-mosn-retry-on"
	MosnMaxRetries               = "x-mosn-max-retries"
	MosnAttemptCount             = "x-mosn-attempt-count"
	MosnOriginalPath             = "x-mosn-original-path"
	MosnUpstreamServiceTime      = "x-mosn-upstream-service-time"
	MosnUpstreamAltStatName      = "x-mosn-upstream-alt-stat-name"
	MosnDownstreamServiceNode    = "x-mosn-downstream-service-node"
	MosnImmediateHealthCheckFail = "x-mosn-immediate-health-check-fail"
)
