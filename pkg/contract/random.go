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
	"math/rand/v2"
)

// MaxRandomID is the upper bound of identifiers generated by RandomID.
const MaxRandomID = 99999

// RandomID returns a pseudo-random identifier in [1, MaxRandomID] for
// fixtures that need a fresh ID.  Uniqueness is probabilistic only, two
// concurrent cases may draw the same value.
func RandomID() int {
	return RandomIDIn(1, MaxRandomID)
}

// RandomIDIn returns a pseudo-random identifier in [lo, hi].
func RandomIDIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rand.IntN(hi-lo+1)
}
