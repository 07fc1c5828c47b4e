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

package corpus

// Only returns the subset of the Corpus containing the games in which at
// least one of the named competitors took part. Names are matched against
// the full competitor identity string.
func (c Corpus) Only(names []string) Corpus {
	keep := identitySet(names)
	filtered := make(Corpus, 0, len(c))
	for _, ranking := range c {
		if ranking.involvesAny(keep) {
			filtered = append(filtered, ranking)
		}
	}

	return filtered
}

// Exclude returns the subset of the Corpus containing the games in which
// none of the named competitors took part.
func (c Corpus) Exclude(names []string) Corpus {
	drop := identitySet(names)
	filtered := make(Corpus, 0, len(c))
	for _, ranking := range c {
		if !ranking.involvesAny(drop) {
			filtered = append(filtered, ranking)
		}
	}

	return filtered
}

func (r Ranking) involvesAny(names map[string]bool) bool {
	for player := range r {
		if names[player.String()] {
			return true
		}
	}

	return false
}

func identitySet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}

	return set
}
