// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"regexp"
	"strconv"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// NaturalLess reports whether a precedes b in natural order: runs of digits
// are compared by numeric value, everything else byte-wise. Game
// identifiers are usually plain integers, which this orders numerically,
// but mixed identifiers like "season2-10" also order the way a human would
// expect.
func NaturalLess(a, b string) bool {
	chunksA := chunkify(a)
	chunksB := chunkify(b)

	for i, chunk := range chunksA {
		if i >= len(chunksB) {
			// b is a prefix of a.
			return false
		}

		aInt, aErr := strconv.Atoi(chunk)
		bInt, bErr := strconv.Atoi(chunksB[i])

		if aErr == nil && bErr == nil {
			if aInt != bInt {
				return aInt < bInt
			}

			continue
		}

		if chunk != chunksB[i] {
			return chunk < chunksB[i]
		}
	}

	return len(chunksA) < len(chunksB)
}
