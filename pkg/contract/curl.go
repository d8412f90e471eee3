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
	"net/http"
	"sort"
	"strings"
)

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Curl renders a request as a curl command line so a failure can be
// reproduced by hand.
func Curl(request *http.Request, body []byte) string {
	parts := []string{"curl", "-X", request.Method}

	keys := make([]string, 0, len(request.Header))
	for key := range request.Header {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		for _, value := range request.Header[key] {
			parts = append(parts, "-H", shellQuote(key+": "+value))
		}
	}

	if len(body) > 0 {
		parts = append(parts, "-d", shellQuote(string(body)))
	}

	parts = append(parts, shellQuote(request.URL.String()))

	return strings.Join(parts, " ")
}
