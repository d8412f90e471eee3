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
	"time"
)

// Fields are pointers so payloads can omit a field or send its zero value
// explicitly, both of which the service treats differently.

// Book is a book resource.
type Book struct {
	ID          *int       `json:"id,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	PageCount   *int       `json:"pageCount,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
}

// CoverPhoto is a cover photo resource.
type CoverPhoto struct {
	ID     *int    `json:"id,omitempty"`
	IDBook *int    `json:"idBook,omitempty"`
	URL    *string `json:"url,omitempty"`
}

// User is a user resource.
type User struct {
	ID       *int    `json:"id,omitempty"`
	UserName *string `json:"userName,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Problem is the error envelope.  Not found errors carry a title and
// status, validation errors additionally carry messages per field.
type Problem struct {
	Type    string              `json:"type,omitempty"`
	Title   string              `json:"title,omitempty"`
	Status  int                 `json:"status,omitempty"`
	TraceID string              `json:"traceId,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Well known problem titles and validation messages.
const (
	TitleNotFound = "Not Found"
	// TitleValidation is the title of a validation problem.
	TitleValidation = "One or more validation errors occurred."
	// MessageNotInt32 is reported when a JSON field cannot be bound to an
	// integer.
	MessageNotInt32 = "The JSON value could not be converted to System.Int32."
)

// InvalidValueMessage is reported when a path parameter cannot be bound,
// e.g. "The value 'sde' is not valid.".
func InvalidValueMessage(value string) string {
	return "The value '" + value + "' is not valid."
}
