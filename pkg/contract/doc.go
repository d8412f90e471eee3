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

// Package contract verifies HTTP/JSON responses against declarative expectations.
//
// A Verifier issues a single request described by a RequestSpec and evaluates
// an ordered list of Expectations against the response, producing one Verdict
// per expectation:
//
//	result, err := verifier.Verify(ctx,
//		contract.NewRequest(contract.Endpoint{Method: http.MethodGet, Path: "Books/{id}"}).
//			WithParam("id", 5),
//		contract.StatusEquals(http.StatusOK),
//		contract.FieldEquals("id", 5),
//	)
//
// # Failure semantics
//
// Transport and decode failures are returned as errors and abort the call.
// Expectation mismatches never abort: each is reported in its own Verdict so
// that a single call can surface several contract violations at once.
//
// # Warnings and quirks
//
// Some targets knowingly diverge from a well behaved REST contract. Rather
// than asserting the divergent behaviour silently, an expectation can be
// demoted with Warn, or replaced with Override which records the obvious
// contract alongside the observed one and the reason they differ. Both
// produce warned verdicts, which are reported but never fail a test.
package contract
