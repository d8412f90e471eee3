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
	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
)

// The service is seeded with fixture data on every start.  These identifiers
// are known to exist, or known not to, in that data.
const (
	// BookWithCoversID is a book with at least one cover photo.
	BookWithCoversID = 41
	// CoverlessBookID is a book identifier with no cover photos.
	CoverlessBookID = 458
	// InvalidBookID is a book identifier that is not an integer.
	InvalidBookID = "ab4"
)

// MinFreshID is above every seeded identifier, resources created with an ID
// at or above it never alias seed data.
const MinFreshID = 10000

// FreshID returns a random identifier that is not in the seed data.
func FreshID() int {
	return contract.RandomIDIn(MinFreshID, contract.MaxRandomID)
}

// Fixture describes the seeded data of a resource.
type Fixture struct {
	Resource Resource
	// KnownID exists in the seed data.
	KnownID int
	// UnknownID does not exist in the seed data.
	UnknownID int
	// InvalidID cannot be bound to an integer identifier.
	InvalidID string
	// UpdatableID and DeletableID are targets for mutating operations.
	UpdatableID int
	DeletableID int
	// Keys are the properties every element of a listing carries.
	Keys []string
}

// Fixtures returns the seed data description of every resource.
func Fixtures() map[Resource]Fixture {
	return map[Resource]Fixture{
		Books: {
			Resource:    Books,
			KnownID:     5,
			UnknownID:   6874,
			InvalidID:   "sde",
			UpdatableID: 101,
			DeletableID: 5,
			Keys:        []string{"id", "title", "description", "pageCount", "excerpt", "publishDate"},
		},
		CoverPhotos: {
			Resource:    CoverPhotos,
			KnownID:     3,
			UnknownID:   1234,
			InvalidID:   "ek4",
			UpdatableID: 6,
			DeletableID: 8,
			Keys:        []string{"id", "idBook", "url"},
		},
		Users: {
			Resource:    Users,
			KnownID:     8,
			UnknownID:   4521,
			InvalidID:   "usr",
			UpdatableID: 2,
			DeletableID: 1,
			Keys:        []string{"id", "userName", "password"},
		},
	}
}

// FixtureFor returns the seed data description of a resource.
func FixtureFor(resource Resource) Fixture {
	return Fixtures()[resource]
}
