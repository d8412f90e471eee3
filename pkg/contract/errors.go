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
	"errors"
)

var (
	// ErrTransport is raised when the request could not be completed at the
	// network level e.g. connection refused, DNS failure or timeout.
	ErrTransport = errors.New("transport error")

	// ErrDecode is raised when a JSON body is required but the response
	// body is not valid JSON.
	ErrDecode = errors.New("decode error")

	// ErrPathNotFound is raised when an expectation references a JSON path
	// that does not resolve.
	ErrPathNotFound = errors.New("path not found")

	// ErrTypeMismatch is raised when a resolved value is not of the type an
	// expectation requires.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrExpectationFailed is raised when a value is present but does not
	// match.
	ErrExpectationFailed = errors.New("expectation failed")

	// ErrRequest is raised when a request cannot be constructed from its
	// specification, or an expectation is malformed e.g. a path that does
	// not parse.
	ErrRequest = errors.New("invalid request")
)
