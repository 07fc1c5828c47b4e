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

// Augment returns a new Corpus extended with two synthetic two-player games
// per real competitor: one the anchor wins and one the competitor wins.
// After augmentation every competitor has at least one win and one loss on
// record, so the estimator's fixed point is well-defined no matter what the
// real games look like. The anchor's own strength estimate is meaningless
// and is stripped again during post-processing; the bias the synthetic
// games introduce is the same for every competitor and does not disturb
// their relative order.
func Augment(c Corpus) Corpus {
	anchor := Anchor()

	augmented := make(Corpus, len(c), len(c)+2*len(c.Players()))
	copy(augmented, c)

	for _, player := range c.SortedPlayers() {
		if player.IsAnchor() {
			continue
		}

		augmented = append(augmented,
			Ranking{anchor: 1, player: 2},
			Ranking{player: 1, anchor: 2},
		)
	}

	return augmented
}
