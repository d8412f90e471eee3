/*
Copyright 2026 the FakeRESTApi Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package contract

import (
	"net/http"
)

// RequestSpec describes a single request.  Specs are built per call and
// must not be shared between test cases.
type RequestSpec struct {
	Endpoint Endpoint
	Params   map[string]any
	Payload  any
	Headers  http.Header
}

// NewRequest starts a request specification for the endpoint.
func NewRequest(endpoint Endpoint) *RequestSpec {
	return &RequestSpec{
		Endpoint: endpoint,
		Params:   map[string]any{},
		Headers:  http.Header{},
	}
}

// WithParam sets a path placeholder value.
func (r *RequestSpec) WithParam(name string, value any) *RequestSpec {
	r.Params[name] = value

	return r
}

// WithID is shorthand for the ubiquitous {id} placeholder.
func (r *RequestSpec) WithID(value any) *RequestSpec {
	return r.WithParam("id", value)
}

// WithPayload sets the JSON request body.
func (r *RequestSpec) WithPayload(payload any) *RequestSpec {
	r.Payload = payload

	return r
}

// WithHeader adds a request header.
func (r *RequestSpec) WithHeader(key, value string) *RequestSpec {
	r.Headers.Add(key, value)

	return r
}
