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

package fakerestapi

import (
	"context"
	_ "embed"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// OpenAPIDocument returns a copy of the embedded OpenAPI document.  Its
// paths are rooted at the service origin, so the verifier's base URL must
// carry the /api/v1 prefix for responses to match an operation.
func OpenAPIDocument() []byte {
	out := make([]byte, len(openAPIDocument))
	copy(out, openAPIDocument)

	return out
}

// Schema loads the embedded OpenAPI document.
func Schema(ctx context.Context) (*contract.Schema, error) {
	return contract.NewSchema(ctx, openAPIDocument)
}
