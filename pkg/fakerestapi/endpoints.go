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

// Package fakerestapi describes the FakeRESTApi demo service the suites
// verify: its endpoints, models, seed data and documented quirks.
package fakerestapi

import (
	"net/http"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
)

// DefaultBaseURL is the root of the public demo service.
const DefaultBaseURL = "https://fakerestapi.azurewebsites.net/api/v1/"

// Resource is a collection exposed by the service.
type Resource string

const (
	Books       Resource = "Books"
	CoverPhotos Resource = "CoverPhotos"
	Users       Resource = "Users"
)

// Resources lists every collection.
func Resources() []Resource {
	return []Resource{Books, CoverPhotos, Users}
}

// Endpoints contains all API endpoint descriptors.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Collection endpoints.
func (e *Endpoints) List(resource Resource) contract.Endpoint {
	return contract.Endpoint{Method: http.MethodGet, Path: string(resource)}
}

func (e *Endpoints) Create(resource Resource) contract.Endpoint {
	return contract.Endpoint{Method: http.MethodPost, Path: string(resource)}
}

// Item endpoints, all take an {id} parameter.
func (e *Endpoints) Get(resource Resource) contract.Endpoint {
	return contract.Endpoint{Method: http.MethodGet, Path: string(resource) + "/{id}"}
}

func (e *Endpoints) Update(resource Resource) contract.Endpoint {
	return contract.Endpoint{Method: http.MethodPut, Path: string(resource) + "/{id}"}
}

func (e *Endpoints) Delete(resource Resource) contract.Endpoint {
	return contract.Endpoint{Method: http.MethodDelete, Path: string(resource) + "/{id}"}
}

// CoversByBook lists the cover photos of a book, takes an {idBook} parameter.
func (e *Endpoints) CoversByBook() contract.Endpoint {
	return contract.Endpoint{Method: http.MethodGet, Path: string(CoverPhotos) + "/books/covers/{idBook}"}
}
