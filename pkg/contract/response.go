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
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// Response is a fully read HTTP response.
type Response struct {
	// Request is the request that produced the response, its body has
	// already been consumed.
	Request    *http.Request
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// JSON returns the parsed body.  The result does not exist when the body is
// empty.
func (r *Response) JSON() gjson.Result {
	return gjson.ParseBytes(r.Body)
}

// ValidJSON reports whether the body is a single valid JSON document.
func (r *Response) ValidJSON() bool {
	return len(r.Body) > 0 && gjson.ValidBytes(r.Body)
}

// Get resolves a dot/bracket path against the body.
func (r *Response) Get(path string) (gjson.Result, error) {
	return lookup(r.JSON(), path)
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

// Result is the outcome of a single verification.
type Result struct {
	Response *Response
	Verdicts VerdictList
}

// Passed is true when no expectation failed.  Warnings do not count.
func (r *Result) Passed() bool {
	return r.Verdicts.Passed()
}
