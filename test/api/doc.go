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

// Package api provides integration test utilities for the FakeRESTApi
// service.
//
// # Client
//
// APIClient wraps a contract.Verifier configured from TestConfig.  Requests
// carry W3C trace context headers, and every request, verdict and failing
// response is logged to the Ginkgo writer so it is reported alongside the
// spec that issued it.  When schema validation is enabled every response is
// also checked against the embedded OpenAPI document.
//
// # Configuration
//
// Configuration is read from an optional YAML file named by
// CONTRACT_CONFIG_FILE, then from the environment and any .env file found
// next to the suite:
//
//	API_BASE_URL      service root, defaults to the public demo service
//	REQUEST_TIMEOUT   per request timeout, defaults to 30s
//	SKIP_INTEGRATION  skip suites that need the live service
//	DEBUG_LOGGING     log at debug level
//	LOG_REQUESTS      log every request as a curl command
//	LOG_RESPONSES     log every response body
//	VALIDATE_SCHEMA   check responses against the OpenAPI document
//
// # Fixtures
//
// Payload builders create resources with random identifiers so concurrent
// specs are unlikely to collide.  The service does not persist writes, so
// specs never depend on data created by another spec.
package api
