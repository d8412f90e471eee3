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

var _ = Describe("Users", func() {
	fixture := fakerestapi.FixtureFor(fakerestapi.Users)

	Context("When retrieving a user", func() {
		It("should return the user", func() {
			spec := client.Request(client.Endpoints().Get(fakerestapi.Users)).WithID(fixture.KnownID)

			result, err := client.Verify(ctx, spec,
				contract.StatusEquals(http.StatusOK),
				contract.FieldEquals("id", fixture.KnownID),
				contract.HasProperty("userName"),
				contract.HasProperty("password"),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())
		})
	})

	Context("When creating a user", func() {
		Describe("Given a valid user", func() {
			It("should return the created user", func() {
				payload := api.NewUserPayload().Build()

				result := api.CreateWithCleanup(client, ctx, fakerestapi.Users, payload,
					contract.StatusEquals(http.StatusOK),
					contract.FieldEquals("id", *payload.ID),
					contract.FieldEquals("userName", fmt.Sprintf("TestUser%d", *payload.ID)),
					contract.FieldEquals("password", "Password11"),
				)
				Expect(result).To(api.PassContract())
			})
		})

		Describe("Given an ID that is not an integer", func() {
			It("should report the id cannot be converted", func() {
				payload := api.WithField(api.NewUserPayload().Build(), "id", "abc")

				spec := client.Request(client.Endpoints().Create(fakerestapi.Users)).WithPayload(payload)

				result, err := client.Verify(ctx, spec, api.Invalid("$.id", fakerestapi.MessageNotInt32)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(api.PassContract())

				var problem fakerestapi.Problem

				Expect(result.Response.Decode(&problem)).To(Succeed())
				Expect(problem.Title).To(Equal(fakerestapi.TitleValidation))
			})
		})
	})

	Context("When updating a user", func() {
		It("should return the updated user name", func() {
			payload := api.NewUserPayload().WithID(fixture.UpdatableID).WithUserName("User update").Build()

			spec := client.Request(client.Endpoints().Update(fakerestapi.Users)).WithID(fixture.UpdatableID).WithPayload(payload)

			result, err := client.Verify(ctx, spec,
				contract.StatusEquals(http.StatusOK),
				contract.FieldEquals("userName", "User update"),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())
		})
	})

	Context("When deleting a user", func() {
		It("should still serve the user afterwards", func() {
			spec := client.Request(client.Endpoints().Delete(fakerestapi.Users)).WithID(fixture.DeletableID)

			result, err := client.Verify(ctx, spec, contract.StatusEquals(http.StatusOK))
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())

			spec = client.Request(client.Endpoints().Get(fakerestapi.Users)).WithID(fixture.DeletableID)

			result, err = client.Verify(ctx, spec, fakerestapi.ReadAfterDelete())
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(api.PassContract())
			Expect(result).To(api.HaveWarned(fakerestapi.QuirkDeleteNotDurable.Reason))
		})
	})
})
