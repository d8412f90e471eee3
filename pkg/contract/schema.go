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
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// Schema is an OpenAPI document used to check responses conform to the
// documented response schemas.
type Schema struct {
	document *openapi3.T
	router   routers.Router
}

// NewSchema loads and validates an OpenAPI 3 document.
func NewSchema(ctx context.Context, data []byte) (*Schema, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	document, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := document.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	router, err := gorillamux.NewRouter(document)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	return &Schema{
		document: document,
		router:   router,
	}, nil
}

// Validate checks the response against the schema of the operation that
// matches its request.
func (s *Schema) Validate(ctx context.Context, response *Response) error {
	route, pathParams, err := s.router.FindRoute(response.Request)
	if err != nil {
		return fmt.Errorf("%w: no documented operation for %s %s: %w", ErrPathNotFound, response.Request.Method, response.Request.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    response.Request,
			PathParams: pathParams,
			Route:      route,
		},
		Status: response.StatusCode,
		Header: response.Header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
			MultiError:            true,
		},
	}

	input.SetBodyBytes(response.Body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %w", ErrExpectationFailed, err)
	}

	return nil
}

// MatchesSchema passes iff the response conforms to the documented schema
// for its operation and status.
func MatchesSchema(schema *Schema) Expectation {
	return Custom("body matches documented schema", "conforming response", false, func(response *Response) (string, error) {
		if err := schema.Validate(response.Request.Context(), response); err != nil {
			return fmt.Sprintf("status %d", response.StatusCode), err
		}

		return fmt.Sprintf("status %d", response.StatusCode), nil
	})
}
