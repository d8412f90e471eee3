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
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/spjmurray/go-util/pkg/set"
	"github.com/tidwall/gjson"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// Severity controls how a failed expectation is reported.
type Severity string

const (
	// SeverityError reports a failed expectation as failed.
	SeverityError Severity = "error"
	// SeverityWarning reports a failed expectation as warned.
	SeverityWarning Severity = "warning"
)

// Check evaluates a response.  It returns a rendering of the actual value it
// inspected, and a classified error if the expectation does not hold.
type Check func(response *Response) (actual string, err error)

// ElementCheck validates a single array element.
type ElementCheck func(element gjson.Result) error

// Expectation is a single declarative check against a response.
type Expectation struct {
	// Name describes the check e.g. "status == 200".
	Name string
	// Expected renders the expected value for reports.
	Expected string
	Severity Severity
	// Reason annotates warnings and quirk overrides.
	Reason string

	check        Check
	requiresJSON bool
	naive        *Expectation
}

// Custom creates an expectation from an arbitrary check.  If requiresJSON is
// set the verifier guarantees the body is valid JSON before calling it.
func Custom(name, expected string, requiresJSON bool, check Check) Expectation {
	return Expectation{
		Name:         name,
		Expected:     expected,
		Severity:     SeverityError,
		check:        check,
		requiresJSON: requiresJSON,
	}
}

// RequiresJSON reports whether the expectation inspects the JSON body.  An
// override only requires what its observed expectation requires, the naive
// one is consulted on a best effort basis.
func (e Expectation) RequiresJSON() bool {
	return e.requiresJSON
}

// Warn demotes a failure of this expectation to a warning.  Use it where
// the target is documented not to honour a contract the suite still wants
// to observe.
func (e Expectation) Warn(reason string) Expectation {
	e.Severity = SeverityWarning
	e.Reason = reason

	return e
}

// Override encodes a documented divergence of the target from the obvious
// contract.  The observed expectation is what the target actually does, the
// naive one what a well behaved service would do.  When the observed
// behaviour holds the verdict is warned with the reason, so the divergence
// stays visible.  When it does not hold but the naive contract does, the
// override is stale and the verdict fails.
func Override(naive, observed Expectation, reason string) Expectation {
	observed.Name = fmt.Sprintf("%s (overrides %s)", observed.Name, naive.Name)
	observed.Reason = reason
	observed.naive = &naive

	return observed
}

// holds reports whether the naive side of an override holds.  It cannot hold
// when it needs a JSON body the response does not carry.
func (e *Expectation) holds(response *Response) bool {
	if e.check == nil || (e.RequiresJSON() && !response.ValidJSON()) {
		return false
	}

	_, err := e.check(response)

	return err == nil
}

// Evaluate runs the expectation against a response.
func (e Expectation) Evaluate(response *Response) Verdict {
	if e.check == nil {
		return Verdict{
			Expectation: e.Name,
			Outcome:     Failed,
			Expected:    e.Expected,
			Err:         fmt.Errorf("%w: expectation %q has no check, build it with a constructor", ErrRequest, e.Name),
		}
	}

	actual, err := e.check(response)

	verdict := Verdict{
		Expectation: e.Name,
		Expected:    e.Expected,
		Actual:      actual,
		Err:         err,
	}

	switch {
	case e.naive != nil:
		verdict.Reason = e.Reason

		if err == nil {
			verdict.Outcome = Warned

			return verdict
		}

		verdict.Outcome = Failed

		if e.naive.holds(response) {
			verdict.Err = fmt.Errorf("%w: quirk no longer reproduces, %s now holds: %w", ErrExpectationFailed, e.naive.Name, err)
		}
	case err == nil:
		verdict.Outcome = Passed
	case e.Severity == SeverityWarning:
		verdict.Outcome = Warned
		verdict.Reason = e.Reason
	default:
		verdict.Outcome = Failed
	}

	return verdict
}

// render gives a compact JSON rendering of a Go value for reports.
func render(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

func displayPath(path string) string {
	switch {
	case path == "":
		return "body"
	case strings.HasPrefix(path, "["):
		return "body" + path
	default:
		return "body." + path
	}
}

// jsonEqual compares a raw JSON value with a Go value after normalising
// both through encoding/json, so 5 and 5.0 compare equal.
func jsonEqual(raw string, want any) (bool, error) {
	wantData, err := json.Marshal(want)
	if err != nil {
		return false, fmt.Errorf("%w: expected value is not representable as JSON: %w", ErrTypeMismatch, err)
	}

	var actualValue, wantValue any

	if err := json.Unmarshal([]byte(raw), &actualValue); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if err := json.Unmarshal(wantData, &wantValue); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return reflect.DeepEqual(actualValue, wantValue), nil
}

// StatusEquals passes iff the status code equals code.
func StatusEquals(code int) Expectation {
	expected := strconv.Itoa(code)

	return Custom("status == "+expected, expected, false, func(response *Response) (string, error) {
		actual := strconv.Itoa(response.StatusCode)

		if response.StatusCode != code {
			return actual, fmt.Errorf("%w: status %d %s", ErrExpectationFailed, response.StatusCode, http.StatusText(response.StatusCode))
		}

		return actual, nil
	})
}

// StatusNot passes iff the status code is anything other than code.
func StatusNot(code int) Expectation {
	expected := "not " + strconv.Itoa(code)

	return Custom("status != "+strconv.Itoa(code), expected, false, func(response *Response) (string, error) {
		actual := strconv.Itoa(response.StatusCode)

		if response.StatusCode == code {
			return actual, fmt.Errorf("%w: status %d %s", ErrExpectationFailed, response.StatusCode, http.StatusText(response.StatusCode))
		}

		return actual, nil
	})
}

// FieldEquals passes iff the value at path equals value, compared as JSON.
func FieldEquals(path string, value any) Expectation {
	expected := render(value)

	return Custom(displayPath(path)+" == "+expected, expected, true, func(response *Response) (string, error) {
		result, err := response.Get(path)
		if err != nil {
			return "", err
		}

		equal, err := jsonEqual(result.Raw, value)
		if err != nil {
			return result.Raw, err
		}

		if !equal {
			return result.Raw, fmt.Errorf("%w: %s is %s", ErrExpectationFailed, displayPath(path), result.Raw)
		}

		return result.Raw, nil
	})
}

// BodyEquals passes iff the whole body equals value, compared as JSON.
func BodyEquals(value any) Expectation {
	return FieldEquals("", value)
}

// FieldContains passes iff the value at path is a string containing substring.
func FieldContains(path, substring string) Expectation {
	expected := render(substring)

	return Custom(displayPath(path)+" contains "+expected, "string containing "+expected, true, func(response *Response) (string, error) {
		result, err := response.Get(path)
		if err != nil {
			return "", err
		}

		if result.Type != gjson.String {
			return result.Raw, fmt.Errorf("%w: %s is %s, not a string", ErrTypeMismatch, displayPath(path), result.Type)
		}

		if !strings.Contains(result.Str, substring) {
			return result.Raw, fmt.Errorf("%w: %s does not contain %s", ErrExpectationFailed, displayPath(path), expected)
		}

		return result.Raw, nil
	})
}

// HasProperty passes iff path resolves to any value, including null.
func HasProperty(path string) Expectation {
	return Custom("has "+displayPath(path), "present", true, func(response *Response) (string, error) {
		result, err := response.Get(path)
		if err != nil {
			return "", err
		}

		return result.Raw, nil
	})
}

// HeaderPresent passes iff the response carries the header.
func HeaderPresent(name string) Expectation {
	return Custom("header "+http.CanonicalHeaderKey(name)+" present", "present", false, func(response *Response) (string, error) {
		values := response.Header.Values(name)
		if len(values) == 0 {
			return "", fmt.Errorf("%w: header %s is not set", ErrExpectationFailed, http.CanonicalHeaderKey(name))
		}

		return strings.Join(values, ", "), nil
	})
}

// ArrayShape passes iff the body is an array and every element satisfies
// check.  An empty array passes.
func ArrayShape(check ElementCheck) Expectation {
	return ArrayShapeAt("", check)
}

// ArrayShapeAt is ArrayShape for the array at path.
func ArrayShapeAt(path string, check ElementCheck) Expectation {
	return Custom(displayPath(path)+" is an array of valid elements", "array", true, func(response *Response) (string, error) {
		result, err := response.Get(path)
		if err != nil {
			return "", err
		}

		if !result.IsArray() {
			return result.Raw, fmt.Errorf("%w: %s is %s, not an array", ErrTypeMismatch, displayPath(path), result.Type)
		}

		elements := result.Array()
		actual := fmt.Sprintf("array of %d elements", len(elements))

		var errs []error

		for i, element := range elements {
			if err := check(element); err != nil {
				errs = append(errs, fmt.Errorf("element %d: %w", i, err))
			}
		}

		return actual, utilerrors.NewAggregate(errs)
	})
}

// HasKeys checks that an array element is an object with all the keys.
func HasKeys(keys ...string) ElementCheck {
	required := set.New[string](keys...)

	return func(element gjson.Result) error {
		if !element.IsObject() {
			return fmt.Errorf("%w: element is %s, not an object", ErrTypeMismatch, element.Type)
		}

		var present []string

		element.ForEach(func(key, _ gjson.Result) bool {
			present = append(present, key.String())
			return true
		})

		var missing []string

		for key := range required.Difference(set.New[string](present...)).All() {
			missing = append(missing, key)
		}

		if len(missing) > 0 {
			sort.Strings(missing)

			return fmt.Errorf("%w: missing keys %s", ErrPathNotFound, strings.Join(missing, ", "))
		}

		return nil
	}
}

// ElementFieldEquals checks that the value at path within an element equals
// value.
func ElementFieldEquals(path string, value any) ElementCheck {
	return func(element gjson.Result) error {
		result, err := lookup(element, path)
		if err != nil {
			return err
		}

		equal, err := jsonEqual(result.Raw, value)
		if err != nil {
			return err
		}

		if !equal {
			return fmt.Errorf("%w: %s is %s, want %s", ErrExpectationFailed, path, result.Raw, render(value))
		}

		return nil
	}
}

// All combines expectations into one that holds iff every one of them holds.
// It requires a JSON body if any of them does.
func All(name string, expectations ...Expectation) Expectation {
	needsJSON := false

	for _, e := range expectations {
		needsJSON = needsJSON || e.RequiresJSON()
	}

	return Custom(name, "all of "+strconv.Itoa(len(expectations))+" hold", needsJSON, func(response *Response) (string, error) {
		var (
			actuals []string
			errs    []error
		)

		for _, e := range expectations {
			verdict := e.Evaluate(response)

			if verdict.Actual != "" {
				actuals = append(actuals, verdict.Actual)
			}

			if verdict.Outcome == Failed {
				errs = append(errs, fmt.Errorf("%s: %w", e.Name, verdict.Err))
			}
		}

		return strings.Join(actuals, ", "), utilerrors.NewAggregate(errs)
	})
}

// PayloadEchoed passes iff every top level field of payload, except the
// ignored ones, is present in the body with the same value.
func PayloadEchoed(payload any, ignore ...string) Expectation {
	name := "body echoes payload"

	data, err := json.Marshal(payload)
	if err != nil {
		return Custom(name, "payload fields", false, func(*Response) (string, error) {
			return "", fmt.Errorf("%w: marshaling payload: %w", ErrRequest, err)
		})
	}

	var fields map[string]any

	if err := json.Unmarshal(data, &fields); err != nil {
		return Custom(name, "payload fields", false, func(*Response) (string, error) {
			return "", fmt.Errorf("%w: payload is not a JSON object: %w", ErrRequest, err)
		})
	}

	keys := make([]string, 0, len(fields))

	for key := range fields {
		if !slices.Contains(ignore, key) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	expectations := make([]Expectation, 0, len(keys))

	for _, key := range keys {
		expectations = append(expectations, FieldEquals(key, fields[key]))
	}

	return All(name, expectations...)
}
