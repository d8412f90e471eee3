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
	"fmt"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// Outcome is the result of evaluating one expectation.
type Outcome string

const (
	// Passed means the expectation held.
	Passed Outcome = "passed"
	// Failed means the expectation did not hold and fails the case.
	Failed Outcome = "failed"
	// Warned means a divergence was observed but does not fail the case.
	Warned Outcome = "warned"
)

// Verdict records the evaluation of a single expectation.
type Verdict struct {
	// Expectation is the name of the evaluated expectation.
	Expectation string
	Outcome     Outcome
	// Expected and Actual are human readable renderings of the compared
	// values, Actual may be empty if nothing could be resolved.
	Expected string
	Actual   string
	// Reason carries the annotation of a warning or quirk.
	Reason string
	// Err is the classified evaluation error, nil when the underlying
	// check held.
	Err error
}

func (v Verdict) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", v.Outcome, v.Expectation)

	if v.Err != nil {
		fmt.Fprintf(&b, ": %v", v.Err)
	}

	if v.Outcome != Passed && v.Expected != "" {
		fmt.Fprintf(&b, " (expected %s, actual %s)", v.Expected, orNone(v.Actual))
	}

	if v.Reason != "" {
		fmt.Fprintf(&b, " note: %s", v.Reason)
	}

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "<none>"
	}

	return s
}

// VerdictList is an ordered list of verdicts in expectation order.
type VerdictList []Verdict

func (l VerdictList) filter(outcome Outcome) VerdictList {
	var out VerdictList

	for _, v := range l {
		if v.Outcome == outcome {
			out = append(out, v)
		}
	}

	return out
}

// Failed returns the failed verdicts.
func (l VerdictList) Failed() VerdictList {
	return l.filter(Failed)
}

// Warned returns the warned verdicts.
func (l VerdictList) Warned() VerdictList {
	return l.filter(Warned)
}

// Passed is true when no verdict failed.
func (l VerdictList) Passed() bool {
	return len(l.Failed()) == 0
}

// Summary renders e.g. "2 of 5 expectations failed, 1 warned".
func (l VerdictList) Summary() string {
	return fmt.Sprintf("%d of %d expectations failed, %d warned", len(l.Failed()), len(l), len(l.Warned()))
}

// Report renders the summary followed by one line per verdict.
func (l VerdictList) Report() string {
	lines := make([]string, 0, len(l)+1)
	lines = append(lines, l.Summary())

	for _, v := range l {
		lines = append(lines, "  "+v.String())
	}

	return strings.Join(lines, "\n")
}

// Err aggregates the errors of all failed verdicts, or nil if none failed.
// The aggregate supports errors.Is against the taxonomy sentinels.
func (l VerdictList) Err() error {
	var errs []error

	for _, v := range l.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", v.Expectation, v.Err))
	}

	return utilerrors.NewAggregate(errs)
}
