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

import "testing"

func TestAugment(t *testing.T) {
	games := Corpus{
		Ranking{playerA: 1, playerB: 2, playerC: 3},
		Ranking{playerA: 1, playerB: 2, playerC: 3},
	}

	augmented := Augment(games)

	if len(augmented) != len(games)+2*3 {
		t.Fatalf("expected %d games after augmentation, got %d", len(games)+6, len(augmented))
	}

	// The real games are untouched.
	for i := range games {
		if augmented[i].Size() != 3 {
			t.Fatalf("real game %d was modified: %v", i, augmented[i])
		}
	}

	// Exactly one win and one loss against the anchor per competitor.
	anchor := Anchor()
	wins := make(map[Competitor]int)
	losses := make(map[Competitor]int)
	for _, ranking := range augmented[len(games):] {
		if ranking.Size() != 2 {
			t.Fatalf("synthetic game with %d participants: %v", ranking.Size(), ranking)
		}

		position, found := ranking[anchor]
		if !found {
			t.Fatalf("synthetic game without the anchor: %v", ranking)
		}

		for player, p := range ranking {
			if player == anchor {
				continue
			}

			switch {
			case p < position:
				wins[player]++
			case p > position:
				losses[player]++
			default:
				t.Fatalf("synthetic game is a tie: %v", ranking)
			}
		}
	}

	for _, player := range []Competitor{playerA, playerB, playerC} {
		if wins[player] != 1 || losses[player] != 1 {
			t.Fatalf("%s: %d wins and %d losses against the anchor", player, wins[player], losses[player])
		}
	}

	// C never won a real game and A never lost one, but the augmented
	// corpus must satisfy the eligibility precondition regardless.
	eligibility, err := Validate(augmented)
	if err != nil {
		t.Fatal(err)
	}

	if !eligibility.Clean() {
		t.Fatalf("augmented corpus fails eligibility: %+v", eligibility)
	}
}

func TestAugmentIgnoresAnchor(t *testing.T) {
	games := Augment(Corpus{Ranking{playerA: 1, playerB: 2}})

	// Augmenting twice must not create anchor-versus-anchor games.
	again := Augment(games)
	if len(again) != len(games)+2*2 {
		t.Fatalf("expected %d games, got %d", len(games)+4, len(again))
	}

	for _, ranking := range again {
		if ranking.Size() < 2 {
			t.Fatalf("degenerate synthetic game: %v", ranking)
		}
	}
}
