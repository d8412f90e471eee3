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

//nolint:gochecknoglobals
var resourceEntries = []TableEntry{
	Entry("Books", fakerestapi.Books),
	Entry("CoverPhotos", fakerestapi.CoverPhotos),
	Entry("Users", fakerestapi.Users),
}

var _ = Describe("Resource Contracts", func() {
	Context("When listing a collection", func() {
		DescribeTable("should return an array of well formed elements",
			func(resource fakerestapi.Resource) {
				spec := client.Request(client.Endpoints().List(resource))

				result, err := client.Verify(ctx, spec, api.Listed(resource)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			},
			resourceEntries,
		)
	})

	Context("When reading a single resource", func() {
		DescribeTable("should return the resource with the requested id",
			func(resource fakerestapi.Resource) {
				fixture := fakerestapi.FixtureFor(resource)

				spec := client.Request(client.Endpoints().Get(resource)).WithID(fixture.KnownID)

				result, err := client.Verify(ctx, spec, api.Found(fixture.KnownID)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			},
			resourceEntries,
		)

		DescribeTable("should report unknown ids as not found",
			func(resource fakerestapi.Resource) {
				fixture := fakerestapi.FixtureFor(resource)

				spec := client.Request(client.Endpoints().Get(resource)).WithID(fixture.UnknownID)

				result, err := client.Verify(ctx, spec, api.NotFound()...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			},
			resourceEntries,
		)

		DescribeTable("should reject ids that are not integers",
			func(resource fakerestapi.Resource) {
				fixture := fakerestapi.FixtureFor(resource)

				spec := client.Request(client.Endpoints().Get(resource)).WithID(fixture.InvalidID)

				result, err := client.Verify(ctx, spec, api.InvalidPathValue("id", fixture.InvalidID)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			},
			resourceEntries,
		)
	})

	Context("When creating a resource", func() {
		DescribeTable("should echo the created resource",
			func(resource fakerestapi.Resource) {
				payload := api.NewPayload(resource)

				// The service reformats dates.
				result := api.CreateWithCleanup(client, ctx, resource, payload, api.Echoes(payload, "publishDate")...)
				Expect(result).To(api.PassContract())
			},
			resourceEntries,
		)

		DescribeTable("should not persist the created resource",
			func(resource fakerestapi.Resource) {
				payload := api.NewPayload(resource)

				result := api.CreateWithCleanup(client, ctx, resource, payload, api.Echoes(payload, "publishDate")...)
				Expect(result).To(api.PassContract())

				spec := client.Request(client.Endpoints().Get(resource)).WithID(api.PayloadID(payload))

				result, err := client.Verify(ctx, spec, fakerestapi.ReadAfterCreate(payload))
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
				Expect(result).To(api.HaveWarned(fakerestapi.QuirkCreateNotDurable.Reason))
			},
			resourceEntries,
		)

		DescribeTable("should reject empty fields",
			func(resource fakerestapi.Resource) {
				spec := client.Request(client.Endpoints().Create(resource)).WithPayload(api.NewEmptyPayload(resource))

				result, err := client.Verify(ctx, spec, fakerestapi.EmptyFieldsRejected())
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())

				if len(result.Verdicts.Warned()) > 0 {
					GinkgoWriter.Printf("%s accepted empty fields: %s\n", resource, fakerestapi.QuirkEmptyFieldsAccepted.Reason)
				}
			},
			resourceEntries,
		)
	})

	Context("When updating a resource", func() {
		DescribeTable("should echo the updated resource",
			func(resource fakerestapi.Resource) {
				fixture := fakerestapi.FixtureFor(resource)

				payload := api.WithField(api.NewPayload(resource), "id", fixture.UpdatableID)

				spec := client.Request(client.Endpoints().Update(resource)).WithID(fixture.UpdatableID).WithPayload(payload)

				result, err := client.Verify(ctx, spec, api.Echoes(payload, "publishDate")...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
			},
			resourceEntries,
		)
	})

	Context("When deleting a resource", func() {
		DescribeTable("should acknowledge the deletion",
			func(resource fakerestapi.Resource) {
				fixture := fakerestapi.FixtureFor(resource)

				spec := client.Request(client.Endpoints().Delete(resource)).WithID(fixture.DeletableID)

				result, err := client.Verify(ctx, spec, contract.StatusEquals(http.StatusOK))
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
				Expect(result.Response.Body).To(BeEmpty())
			},
			resourceEntries,
		)

		DescribeTable("should return the same outcome when repeated",
			func(resource fakerestapi.Resource) {
				fixture := fakerestapi.FixtureFor(resource)

				spec := func() *contract.RequestSpec {
					return client.Request(client.Endpoints().Delete(resource)).WithID(fixture.DeletableID)
				}

				result, err := client.Verify(ctx, spec(), contract.StatusEquals(http.StatusOK))
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())

				result, err = client.Verify(ctx, spec(), fakerestapi.RepeatedDelete())
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
				Expect(result).To(api.HaveWarned(fakerestapi.QuirkDeleteNotDurable.Reason))
			},
			resourceEntries,
		)

		DescribeTable("should still serve the resource afterwards",
			func(resource fakerestapi.Resource) {
				fixture := fakerestapi.FixtureFor(resource)

				spec := client.Request(client.Endpoints().Delete(resource)).WithID(fixture.DeletableID)

				result, err := client.Verify(ctx, spec, contract.StatusEquals(http.StatusOK))
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())

				spec = client.Request(client.Endpoints().Get(resource)).WithID(fixture.DeletableID)

				result, err = client.Verify(ctx, spec, fakerestapi.ReadAfterDelete())
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())
				Expect(result).To(api.HaveWarned(fakerestapi.QuirkDeleteNotDurable.Reason))
			},
			resourceEntries,
		)
	})
})
