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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
	"github.com/kocovskae/fakerestapi-tests/pkg/fakerestapi"

	"k8s.io/utils/ptr"
)

// BookPayloadBuilder builds book payloads for testing.
type BookPayloadBuilder struct {
	book fakerestapi.Book
}

// NewBookPayload creates a book with a random identifier.
func NewBookPayload() *BookPayloadBuilder {
	id := fakerestapi.FreshID()

	return &BookPayloadBuilder{
		book: fakerestapi.Book{
			ID:          ptr.To(id),
			Title:       ptr.To(fmt.Sprintf("Book%d", id)),
			Description: ptr.To("Created by the contract suite"),
			PageCount:   ptr.To(100),
			Excerpt:     ptr.To("Lorem ipsum"),
			PublishDate: ptr.To(time.Now().UTC().Truncate(time.Second)),
		},
	}
}

// WithID sets the book ID.
func (b *BookPayloadBuilder) WithID(id int) *BookPayloadBuilder {
	b.book.ID = ptr.To(id)
	return b
}

// WithTitle sets the book title.
func (b *BookPayloadBuilder) WithTitle(title string) *BookPayloadBuilder {
	b.book.Title = ptr.To(title)
	return b
}

// WithEmptyFields blanks every string field.
func (b *BookPayloadBuilder) WithEmptyFields() *BookPayloadBuilder {
	b.book.Title = ptr.To("")
	b.book.Description = ptr.To("")
	b.book.Excerpt = ptr.To("")

	return b
}

func (b *BookPayloadBuilder) Build() fakerestapi.Book {
	return b.book
}

// CoverPhotoPayloadBuilder builds cover photo payloads for testing.
type CoverPhotoPayloadBuilder struct {
	cover fakerestapi.CoverPhoto
}

// NewCoverPhotoPayload creates a cover photo with random identifiers.
func NewCoverPhotoPayload() *CoverPhotoPayloadBuilder {
	return &CoverPhotoPayloadBuilder{
		cover: fakerestapi.CoverPhoto{
			ID:     ptr.To(fakerestapi.FreshID()),
			IDBook: ptr.To(fakerestapi.FreshID()),
			URL:    ptr.To("https://example.com"),
		},
	}
}

// WithID sets the cover photo ID.
func (b *CoverPhotoPayloadBuilder) WithID(id int) *CoverPhotoPayloadBuilder {
	b.cover.ID = ptr.To(id)
	return b
}

// WithURL sets the cover URL.
func (b *CoverPhotoPayloadBuilder) WithURL(url string) *CoverPhotoPayloadBuilder {
	b.cover.URL = ptr.To(url)
	return b
}

// WithEmptyFields blanks every string field.
func (b *CoverPhotoPayloadBuilder) WithEmptyFields() *CoverPhotoPayloadBuilder {
	b.cover.URL = ptr.To("")
	return b
}

func (b *CoverPhotoPayloadBuilder) Build() fakerestapi.CoverPhoto {
	return b.cover
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	user fakerestapi.User
}

// NewUserPayload creates a user with a random identifier.
func NewUserPayload() *UserPayloadBuilder {
	id := fakerestapi.FreshID()

	return &UserPayloadBuilder{
		user: fakerestapi.User{
			ID:       ptr.To(id),
			UserName: ptr.To(fmt.Sprintf("TestUser%d", id)),
			Password: ptr.To("Password11"),
		},
	}
}

// WithID sets the user ID.
func (b *UserPayloadBuilder) WithID(id int) *UserPayloadBuilder {
	b.user.ID = ptr.To(id)
	return b
}

// WithUserName sets the user name.
func (b *UserPayloadBuilder) WithUserName(name string) *UserPayloadBuilder {
	b.user.UserName = ptr.To(name)
	return b
}

// WithEmptyFields blanks every string field.
func (b *UserPayloadBuilder) WithEmptyFields() *UserPayloadBuilder {
	b.user.UserName = ptr.To("")
	b.user.Password = ptr.To("")

	return b
}

func (b *UserPayloadBuilder) Build() fakerestapi.User {
	return b.user
}

// NewPayload creates a valid payload for any resource.
func NewPayload(resource fakerestapi.Resource) any {
	switch resource {
	case fakerestapi.Books:
		return NewBookPayload().Build()
	case fakerestapi.CoverPhotos:
		return NewCoverPhotoPayload().Build()
	case fakerestapi.Users:
		return NewUserPayload().Build()
	}

	Fail(fmt.Sprintf("unknown resource %q", resource))

	return nil
}

// NewEmptyPayload creates a payload with every string field blank.
func NewEmptyPayload(resource fakerestapi.Resource) any {
	switch resource {
	case fakerestapi.Books:
		return NewBookPayload().WithEmptyFields().Build()
	case fakerestapi.CoverPhotos:
		return NewCoverPhotoPayload().WithEmptyFields().Build()
	case fakerestapi.Users:
		return NewUserPayload().WithEmptyFields().Build()
	}

	Fail(fmt.Sprintf("unknown resource %q", resource))

	return nil
}

// WithField returns the payload as raw JSON with one field replaced, this is
// used to send values the typed models cannot represent e.g. a string ID.
func WithField(payload any, field string, value any) json.RawMessage {
	data, err := json.Marshal(payload)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	var fields map[string]any

	ExpectWithOffset(1, json.Unmarshal(data, &fields)).To(Succeed())

	fields[field] = value

	data, err = json.Marshal(fields)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	return data
}

// PayloadID extracts the identifier of a payload.
func PayloadID(payload any) int {
	data, err := json.Marshal(payload)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	var fields struct {
		ID *int `json:"id"`
	}

	ExpectWithOffset(1, json.Unmarshal(data, &fields)).To(Succeed())
	ExpectWithOffset(1, fields.ID).NotTo(BeNil(), "payload has no id")

	return *fields.ID
}

// CreateWithCleanup creates a resource and registers its deletion.
func CreateWithCleanup(client *APIClient, ctx context.Context, resource fakerestapi.Resource, payload any, expectations ...contract.Expectation) *contract.Result {
	spec := client.Request(client.Endpoints().Create(resource)).WithPayload(payload)

	result, err := client.Verify(ctx, spec, expectations...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	id := PayloadID(payload)

	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up %s %d\n", resource, id)

		spec := client.Request(client.Endpoints().Delete(resource)).WithID(id)

		if _, err := client.Verify(ctx, spec, contract.StatusEquals(http.StatusOK)); err != nil {
			GinkgoWriter.Printf("Warning: failed to delete %s %d: %v\n", resource, id, err)
		}
	})

	return result
}
