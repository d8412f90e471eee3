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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"encoding/json"
	"net/http"
	"slices"

	. "github.com/onsi/gomega"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
	"github.com/kocovskae/fakerestapi-tests/pkg/fakerestapi"
)

// Listed expects a successful listing whose elements all carry the
// resource's keys.
func Listed(resource fakerestapi.Resource) []contract.Expectation {
	return []contract.Expectation{
		contract.StatusEquals(http.StatusOK),
		contract.ArrayShape(contract.HasKeys(fakerestapi.FixtureFor(resource).Keys...)),
	}
}

// Found expects the resource with the given ID.
func Found(id int) []contract.Expectation {
	return []contract.Expectation{
		contract.StatusEquals(http.StatusOK),
		contract.FieldEquals("id", id),
	}
}

// NotFound expects the not found problem.
func NotFound() []contract.Expectation {
	return []contract.Expectation{
		contract.StatusEquals(http.StatusNotFound),
		contract.FieldEquals("title", fakerestapi.TitleNotFound),
		contract.FieldEquals("status", http.StatusNotFound),
	}
}

// Invalid expects a validation problem reporting message for field.
func Invalid(field, message string) []contract.Expectation {
	return []contract.Expectation{
		contract.StatusEquals(http.StatusBadRequest),
		contract.FieldContains("errors["+quote(field)+"][0]", message),
	}
}

// InvalidPathValue expects the path parameter binding error for value.
func InvalidPathValue(field, value string) []contract.Expectation {
	return Invalid(field, fakerestapi.InvalidValueMessage(value))
}

// Echoes expects the body to repeat every field of the payload, except the
// ignored ones.
func Echoes(payload any, ignore ...string) []contract.Expectation {
	data, err := json.Marshal(payload)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	var fields map[string]any

	ExpectWithOffset(1, json.Unmarshal(data, &fields)).To(Succeed())

	keys := make([]string, 0, len(fields))

	for key := range fields {
		if !slices.Contains(ignore, key) {
			keys = append(keys, key)
		}
	}

	slices.Sort(keys)

	expectations := []contract.Expectation{
		contract.StatusEquals(http.StatusOK),
	}

	for _, key := range keys {
		expectations = append(expectations, contract.FieldEquals(key, fields[key]))
	}

	return expectations
}

func quote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
