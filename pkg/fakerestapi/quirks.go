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
	"net/http"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
)

// Quirk is a documented divergence of the demo service from the contract a
// well behaved REST service would honour.  Quirks only describe this
// service and must not be applied to other targets.
type Quirk struct {
	Name   string
	Reason string
}

var (
	// QuirkDeleteNotDurable: deletions are acknowledged but not persisted.
	QuirkDeleteNotDurable = Quirk{
		Name:   "delete-not-durable",
		Reason: "deletions are not persisted, the resource is still readable and deletable afterwards",
	}

	// QuirkCreateNotDurable: creations are echoed but not persisted.
	QuirkCreateNotDurable = Quirk{
		Name:   "create-not-durable",
		Reason: "creations are echoed but not persisted, the created resource cannot be read back",
	}

	// QuirkEmptyFieldsAccepted: empty string fields pass validation.
	QuirkEmptyFieldsAccepted = Quirk{
		Name:   "empty-fields-accepted",
		Reason: "required fields are not validated, empty values are accepted",
	}

	// QuirkCoversForUnknownBook: covers of an unknown book are an empty list.
	QuirkCoversForUnknownBook = Quirk{
		Name:   "covers-for-unknown-book",
		Reason: "covers of an unknown book are reported as an empty list rather than not found",
	}
)

// Quirks lists every documented quirk.
func Quirks() []Quirk {
	return []Quirk{
		QuirkDeleteNotDurable,
		QuirkCreateNotDurable,
		QuirkEmptyFieldsAccepted,
		QuirkCoversForUnknownBook,
	}
}

// ReadAfterDelete expects a resource to remain readable after deletion.
func ReadAfterDelete() contract.Expectation {
	return contract.Override(contract.StatusEquals(http.StatusNotFound), contract.StatusNot(http.StatusNotFound), QuirkDeleteNotDurable.Reason)
}

// RepeatedDelete expects a second deletion of the same resource to succeed.
func RepeatedDelete() contract.Expectation {
	return contract.Override(contract.StatusEquals(http.StatusNotFound), contract.StatusEquals(http.StatusOK), QuirkDeleteNotDurable.Reason)
}

// ReadAfterCreate expects a freshly created resource to be missing when read
// back by its ID.  Should the service start persisting creations, the read
// must return every field of the payload.  The publish date is ignored as the
// service reformats it.
func ReadAfterCreate(payload any) contract.Expectation {
	notFound := contract.All("not found problem",
		contract.StatusEquals(http.StatusNotFound),
		contract.FieldEquals("title", TitleNotFound),
	)

	return contract.Override(contract.PayloadEchoed(payload, "publishDate"), notFound, QuirkCreateNotDurable.Reason)
}

// EmptyFieldsRejected expects a creation with empty fields to be rejected,
// which the service does not do, so a failure is only a warning.
func EmptyFieldsRejected() contract.Expectation {
	return contract.StatusEquals(http.StatusBadRequest).Warn(QuirkEmptyFieldsAccepted.Reason)
}

// CoversForUnknownBook expects an empty cover list for a book that does not
// exist.
func CoversForUnknownBook() []contract.Expectation {
	return []contract.Expectation{
		contract.Override(contract.StatusEquals(http.StatusNotFound), contract.StatusEquals(http.StatusOK), QuirkCoversForUnknownBook.Reason),
		contract.Override(contract.FieldEquals("title", TitleNotFound), contract.BodyEquals([]any{}), QuirkCoversForUnknownBook.Reason),
	}
}
