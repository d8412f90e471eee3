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
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/oapi-codegen/runtime"
)

var placeholderRegexp = regexp.MustCompile(`\{([^{}]+)\}`)

// Endpoint describes an HTTP operation relative to a base URL.
type Endpoint struct {
	// Method is the HTTP verb.
	Method string
	// Path is the path template, relative to the base URL, with {name}
	// placeholders e.g. "Books/{id}".
	Path string
	// BaseURL optionally overrides the verifier's base URL.
	BaseURL string
}

func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

// Placeholders returns the placeholder names in the path template in order.
func (e Endpoint) Placeholders() []string {
	matches := placeholderRegexp.FindAllStringSubmatch(e.Path, -1)

	names := make([]string, 0, len(matches))

	for _, match := range matches {
		names = append(names, match[1])
	}

	return names
}

// Resolve renders the path template with the given parameters.  Values are
// styled as simple OpenAPI path parameters, so they are escaped exactly as a
// generated client would.
func (e Endpoint) Resolve(params map[string]any) (string, error) {
	var errs []string

	path := placeholderRegexp.ReplaceAllStringFunc(e.Path, func(match string) string {
		name := match[1 : len(match)-1]

		value, ok := params[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("missing path parameter %q", name))
			return match
		}

		styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
		if err != nil {
			errs = append(errs, fmt.Sprintf("styling path parameter %q: %v", name, err))
			return match
		}

		return styled
	})

	if len(errs) > 0 {
		return "", fmt.Errorf("%w: %s: %s", ErrRequest, e, strings.Join(errs, ", "))
	}

	return path, nil
}

// joinURL appends a relative path to a base URL, tolerating either side
// carrying the separating slash.
func joinURL(base, path string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing url: %w", ErrRequest, err)
	}

	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: url %q is not absolute", ErrRequest, u)
	}

	return u, nil
}
