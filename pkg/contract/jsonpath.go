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
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// parsePath splits a dot/bracket path into its segments e.g.
// `errors["$.id"][0]` becomes ["errors", "$.id", "0"].  The empty path
// addresses the whole document.
func parsePath(path string) ([]string, error) {
	var (
		segments []string
		current  strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '.':
			flush()
		case '[':
			flush()

			if i+1 < len(path) && (path[i+1] == '"' || path[i+1] == '\'') {
				quote := path[i+1]

				end := strings.IndexByte(path[i+2:], quote)
				if end < 0 {
					return nil, fmt.Errorf("unterminated quoted key at offset %d", i)
				}

				key := path[i+2 : i+2+end]
				closing := i + 2 + end + 1

				if closing >= len(path) || path[closing] != ']' {
					return nil, fmt.Errorf("expected ']' at offset %d", closing)
				}

				segments = append(segments, key)
				i = closing

				continue
			}

			end := strings.IndexByte(path[i+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated index at offset %d", i)
			}

			index := path[i+1 : i+1+end]
			if _, err := strconv.Atoi(index); err != nil {
				return nil, fmt.Errorf("index %q is not an integer", index)
			}

			segments = append(segments, index)
			i += 1 + end
		default:
			current.WriteByte(c)
		}
	}

	flush()

	return segments, nil
}

// lookup resolves a dot/bracket path against a parsed document, reporting
// the first segment that does not resolve.
func lookup(document gjson.Result, path string) (gjson.Result, error) {
	segments, err := parsePath(path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: malformed path %q: %w", ErrRequest, path, err)
	}

	current := document

	for i, segment := range segments {
		next := current.Get(gjson.Escape(segment))
		if !next.Exists() {
			return gjson.Result{}, fmt.Errorf("%w: %s has no segment %q", ErrPathNotFound, strings.Join(append([]string{"$"}, segments[:i]...), "."), segment)
		}

		current = next
	}

	return current, nil
}
