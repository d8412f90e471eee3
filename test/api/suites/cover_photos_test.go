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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
	"github.com/kocovskae/fakerestapi-tests/pkg/fakerestapi"
	"github.com/kocovskae/fakerestapi-tests/test/api"
)

var _ = Describe("Cover Photos", func() {
	fixture := fakerestapi.FixtureFor(fakerestapi.CoverPhotos)

	Context("When listing cover photos", func() {
		It("should return cover photos with an id, book and url", func() {
			spec := client.Request(client.Endpoints().List(fakerestapi.CoverPhotos))

			result, err := client.Verify(ctx, spec,
				contract.StatusEquals(http.StatusOK),
				contract.ArrayShape(contract.HasKeys("id", "idBook", "url")),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())

			var covers []fakerestapi.CoverPhoto

			Expect(result.Response.Decode(&covers)).To(Succeed())
			Expect(covers).NotTo(BeEmpty())
		})
	})

	Context("When retrieving a cover photo", func() {
		Describe("Given the cover photo exists", func() {
			It("should return the cover photo", func() {
				spec := client.Request(client.Endpoints().Get(fakerestapi.CoverPhotos)).WithID(fixture.KnownID)

				result, err := client.Verify(ctx, spec, api.Found(fixture.KnownID)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			})
		})

		Describe("Given the cover photo does not exist", func() {
			It("should return not found", func() {
				spec := client.Request(client.Endpoints().Get(fakerestapi.CoverPhotos)).WithID(fixture.UnknownID)

				result, err := client.Verify(ctx, spec, api.NotFound()...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			})
		})

		Describe("Given a malformed cover photo ID", func() {
			It("should return a validation error", func() {
				spec := client.Request(client.Endpoints().Get(fakerestapi.CoverPhotos)).WithID(fixture.InvalidID)

				result, err := client.Verify(ctx, spec, api.InvalidPathValue("id", fixture.InvalidID)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			})
		})
	})

	Context("When listing the covers of a book", func() {
		Describe("Given the book has covers", func() {
			It("should only return covers of that book", func() {
				spec := client.Request(client.Endpoints().CoversByBook()).WithParam("idBook", fakerestapi.BookWithCoversID)

				result, err := client.Verify(ctx, spec,
					contract.StatusEquals(http.StatusOK),
					contract.FieldEquals("[0].idBook", fakerestapi.BookWithCoversID),
					contract.ArrayShape(contract.ElementFieldEquals("idBook", fakerestapi.BookWithCoversID)),
				)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			})
		})

		Describe("Given the book does not exist", func() {
			It("should return an empty list", func() {
				spec := client.Request(client.Endpoints().CoversByBook()).WithParam("idBook", fakerestapi.CoverlessBookID)

				result, err := client.Verify(ctx, spec, fakerestapi.CoversForUnknownBook()...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
				Expect(result).To(api.HaveWarned(fakerestapi.QuirkCoversForUnknownBook.Reason))
			})
		})

		Describe("Given a malformed book ID", func() {
			It("should return a validation error", func() {
				spec := client.Request(client.Endpoints().CoversByBook()).WithParam("idBook", fakerestapi.InvalidBookID)

				result, err := client.Verify(ctx, spec, api.InvalidPathValue("idBook", fakerestapi.InvalidBookID)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			})
		})
	})

	Context("When creating a cover photo", func() {
		It("should return the cover photo url", func() {
			payload := api.NewCoverPhotoPayload().Build()

			result := api.CreateWithCleanup(client, ctx, fakerestapi.CoverPhotos, payload,
				contract.StatusEquals(http.StatusOK),
				contract.FieldEquals("id", *payload.ID),
				contract.FieldEquals("idBook", *payload.IDBook),
				contract.FieldContains("url", "example.com"),
			)
			Expect(result).To(api.PassContract())
		})
	})

	Context("When updating a cover photo", func() {
		It("should return the updated url", func() {
			payload := api.NewCoverPhotoPayload().WithID(fixture.UpdatableID).WithURL("Https://example.com").Build()

			spec := client.Request(client.Endpoints().Update(fakerestapi.CoverPhotos)).WithID(fixture.UpdatableID).WithPayload(payload)

			result, err := client.Verify(ctx, spec,
				contract.StatusEquals(http.StatusOK),
				contract.FieldEquals("url", "Https://example.com"),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())
		})
	})

	Context("When deleting a cover photo", func() {
		It("should acknowledge the deletion", func() {
			spec := client.Request(client.Endpoints().Delete(fakerestapi.CoverPhotos)).WithID(fixture.DeletableID)

			result, err := client.Verify(ctx, spec, contract.StatusEquals(http.StatusOK))
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())
		})
	})
})
