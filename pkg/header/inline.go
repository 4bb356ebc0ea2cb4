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

import (
	"github.com/armon/go-radix"

	"mosn.io/headermap/pkg/types"
)

// Inline describes a well-known header. A map whose variant carries the
// descriptor keeps a direct reference to the first entry with that name,
// so typed access does not need a lookup by name.
type Inline struct {
	name Key
	id   int
}

// Name returns the header name of the descriptor.
func (h *Inline) Name() Key {
	return h.name
}

func (h *Inline) String() string {
	return h.name.Get()
}

var (
	// all registered descriptors, indexed by id
	inlines []*Inline
	// knownInlines maps every registered name to its descriptor, whatever the variant
	knownInlines = radix.New()
)

func newInline(name string) *Inline {
	h := &Inline{
		name: NewKey(name),
		id:   len(inlines),
	}
	inlines = append(inlines, h)
	knownInlines.Insert(h.name.Get(), h)
	return h
}

// isKnownInline reports whether name is a well-known header of any variant.
func isKnownInline(name string) bool {
	_, ok := knownInlines.Get(name)
	return ok
}

// request only
var (
	Accept                     = newInline(types.HeaderAccept)
	AccessControlRequestMethod = newInline(types.HeaderAccessControlRequestMethod)
	Authorization              = newInline(types.HeaderAuthorization)
	Expect                     = newInline(types.HeaderExpect)
	ForwardedFor               = newInline(types.HeaderForwardedFor)
	ForwardedHost              = newInline(types.HeaderForwardedHost)
	ForwardedProto             = newInline(types.HeaderForwardedProto)
	GrpcAcceptEncoding         = newInline(types.HeaderGrpcAcceptEncoding)
	GrpcTimeout                = newInline(types.HeaderGrpcTimeout)
	Host                       = newInline(types.HeaderAuthority)
	Method                     = newInline(types.HeaderMethod)
	Origin                     = newInline(types.HeaderOrigin)
	Path                       = newInline(types.HeaderPath)
	Protocol                   = newInline(types.HeaderProtocol)
	Referer                    = newInline(types.HeaderReferer)
	Scheme                     = newInline(types.HeaderScheme)
	TE                         = newInline(types.HeaderTE)
	UserAgent                  = newInline(types.HeaderUserAgent)
	MosnGlobalTimeout          = newInline(types.MosnGlobalTimeout)
	MosnTryTimeout             = newInline(types.MosnTryTimeout)
	MosnRetryOn                = newInline(types.MosnRetryOn)
	MosnMaxRetries             = newInline(types.MosnMaxRetries)
	MosnOriginalPath           = newInline(types.MosnOriginalPath)
	MosnUpstreamAltStatName    = newInline(types.MosnUpstreamAltStatName)
	MosnDownstreamServiceNode  = newInline(types.MosnDownstreamServiceNode)
)

// response only
var (
	AccessControlAllowCredentials = newInline(types.HeaderAccessControlAllowCredentials)
	AccessControlAllowHeaders     = newInline(types.HeaderAccessControlAllowHeaders)
	AccessControlAllowMethods     = newInline(types.HeaderAccessControlAllowMethods)
	AccessControlAllowOrigin      = newInline(types.HeaderAccessControlAllowOrigin)
	AccessControlExposeHeaders    = newInline(types.HeaderAccessControlExposeHeaders)
	AccessControlMaxAge           = newInline(types.HeaderAccessControlMaxAge)
	Date                          = newInline(types.HeaderDate)
	Etag                          = newInline(types.HeaderEtag)
	Location                      = newInline(types.HeaderLocation)
	Server                        = newInline(types.HeaderServer)
	Status                        = newInline(types.HeaderStatus)
	MosnUpstreamServiceTime       = newInline(types.MosnUpstreamServiceTime)
	MosnImmediateHealthCheckFail  = newInline(types.MosnImmediateHealthCheckFail)
)

// request and response
var (
	CacheControl     = newInline(types.HeaderCacheControl)
	Connection       = newInline(types.HeaderConnection)
	ContentLength    = newInline(types.HeaderContentLength)
	ContentType      = newInline(types.HeaderContentType)
	KeepAlive        = newInline(types.HeaderKeepAlive)
	ProxyConnection  = newInline(types.HeaderProxyConnection)
	RequestID        = newInline(types.HeaderRequestID)
	TransferEncoding = newInline(types.HeaderTransferEncoding)
	Upgrade          = newInline(types.HeaderUpgrade)
	Via              = newInline(types.HeaderVia)
	MosnAttemptCount = newInline(types.MosnAttemptCount)
	MosnStreamID     = newInline(types.MosnStreamID)
)

// response headers and trailers
var (
	GrpcStatus  = newInline(types.HeaderGrpcStatus)
	GrpcMessage = newInline(types.HeaderGrpcMessage)
)

var (
	requestInlines = []*Inline{
		Accept, AccessControlRequestMethod, Authorization, Expect, ForwardedFor,
		ForwardedHost, ForwardedProto, GrpcAcceptEncoding, GrpcTimeout, Host, Method,
		Origin, Path, Protocol, Referer, Scheme, TE, UserAgent, MosnGlobalTimeout,
		MosnTryTimeout, MosnRetryOn, MosnMaxRetries, MosnOriginalPath,
		MosnUpstreamAltStatName, MosnDownstreamServiceNode,
	}
	responseInlines = []*Inline{
		AccessControlAllowCredentials, AccessControlAllowHeaders, AccessControlAllowMethods,
		AccessControlAllowOrigin, AccessControlExposeHeaders, AccessControlMaxAge, Date,
		Etag, Location, Server, Status, MosnUpstreamServiceTime, MosnImmediateHealthCheckFail,
	}
	requestResponseInlines = []*Inline{
		CacheControl, Connection, ContentLength, ContentType, KeepAlive, ProxyConnection,
		RequestID, TransferEncoding, Upgrade, Via, MosnAttemptCount, MosnStreamID,
	}
	responseTrailerInlines = []*Inline{
		GrpcStatus, GrpcMessage,
	}
)
