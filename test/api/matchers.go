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

package api

import (
	"fmt"

	"github.com/onsi/gomega/types"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
)

type passContractMatcher struct{}

// PassContract succeeds when no expectation of a *contract.Result failed.
// Warnings never fail it.
func PassContract() types.GomegaMatcher {
	return &passContractMatcher{}
}

func toResult(actual any) (*contract.Result, error) {
	result, ok := actual.(*contract.Result)
	if !ok || result == nil {
		return nil, fmt.Errorf("PassContract expects a non-nil *contract.Result, got %T", actual)
	}

	return result, nil
}

func (m *passContractMatcher) Match(actual any) (bool, error) {
	result, err := toResult(actual)
	if err != nil {
		return false, err
	}

	return result.Passed(), nil
}

func describe(actual any) string {
	result, err := toResult(actual)
	if err != nil {
		return err.Error()
	}

	response := result.Response

	return fmt.Sprintf("%s %s\n%s\nstatus: %d\nbody: %s",
		response.Request.Method, response.Request.URL, result.Verdicts.Report(), response.StatusCode, string(response.Body))
}

func (m *passContractMatcher) FailureMessage(actual any) string {
	return "Expected the contract to hold:\n" + describe(actual)
}

func (m *passContractMatcher) NegatedFailureMessage(actual any) string {
	return "Expected the contract to be broken:\n" + describe(actual)
}

type haveWarnedMatcher struct {
	reason string
}

// HaveWarned succeeds when a *contract.Result carries a warning with the
// given reason, i.e. a documented quirk reproduced.
func HaveWarned(reason string) types.GomegaMatcher {
	return &haveWarnedMatcher{reason: reason}
}

func (m *haveWarnedMatcher) Match(actual any) (bool, error) {
	result, err := toResult(actual)
	if err != nil {
		return false, err
	}

	for _, verdict := range result.Verdicts.Warned() {
		if verdict.Reason == m.reason {
			return true, nil
		}
	}

	return false, nil
}

func (m *haveWarnedMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("Expected a warning %q:\n%s", m.reason, describe(actual))
}

func (m *haveWarnedMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected no warning %q:\n%s", m.reason, describe(actual))
}
