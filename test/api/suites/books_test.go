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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
	"github.com/kocovskae/fakerestapi-tests/pkg/fakerestapi"
	"github.com/kocovskae/fakerestapi-tests/test/api"
)

var _ = Describe("Books", func() {
	fixture := fakerestapi.FixtureFor(fakerestapi.Books)

	Context("When retrieving a book", func() {
		Describe("Given the book exists", func() {
			It("should return the book", func() {
				spec := client.Request(client.Endpoints().Get(fakerestapi.Books)).WithID(fixture.KnownID)

				result, err := client.Verify(ctx, spec,
					contract.StatusEquals(http.StatusOK),
					contract.FieldEquals("id", fixture.KnownID),
					contract.HasProperty("title"),
					contract.HasProperty("publishDate"),
				)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())

				var book fakerestapi.Book

				Expect(result.Response.Decode(&book)).To(Succeed())
				Expect(book.ID).To(HaveValue(Equal(fixture.KnownID)))
				GinkgoWriter.Printf("Retrieved book %d\n", *book.ID)
			})
		})

		Describe("Given the book does not exist", func() {
			It("should return not found", func() {
				spec := client.Request(client.Endpoints().Get(fakerestapi.Books)).WithID(fixture.UnknownID)

				result, err := client.Verify(ctx, spec, api.NotFound()...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			})
		})

		Describe("Given a malformed book ID", func() {
			It("should return a validation error", func() {
				spec := client.Request(client.Endpoints().Get(fakerestapi.Books)).WithID(fixture.InvalidID)

				result, err := client.Verify(ctx, spec, api.InvalidPathValue("id", fixture.InvalidID)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			})
		})
	})

	Context("When creating a book", func() {
		It("should return the created book", func() {
			payload := api.NewBookPayload().Build()

			result := api.CreateWithCleanup(client, ctx, fakerestapi.Books, payload,
				contract.StatusEquals(http.StatusOK),
				contract.FieldEquals("id", *payload.ID),
				contract.FieldEquals("title", fmt.Sprintf("Book%d", *payload.ID)),
			)
			Expect(result).To(api.PassContract())
		})
	})

	Context("When updating a book", func() {
		It("should return the updated title", func() {
			payload := api.NewBookPayload().WithID(fixture.UpdatableID).WithTitle("Title update").Build()

			spec := client.Request(client.Endpoints().Update(fakerestapi.Books)).WithID(fixture.UpdatableID).WithPayload(payload)

			result, err := client.Verify(ctx, spec,
				contract.StatusEquals(http.StatusOK),
				contract.FieldEquals("title", "Title update"),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())
		})
	})

	Context("When deleting a book", func() {
		It("should acknowledge the deletion", func() {
			spec := client.Request(client.Endpoints().Delete(fakerestapi.Books)).WithID(fixture.DeletableID)

			result, err := client.Verify(ctx, spec, contract.StatusEquals(http.StatusOK))
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())
		})
	})
})
