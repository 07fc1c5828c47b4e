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

import (
	"reflect"
	"testing"
)

var (
	playerA = NewCompetitor("A")
	playerB = NewCompetitor("B")
	playerC = NewCompetitor("C")
)

func TestValidate(t *testing.T) {
	testcases := []struct {
		name     string
		games    Corpus
		expected Eligibility
	}{
		{
			"always last has no win",
			Corpus{
				Ranking{playerA: 1, playerB: 2, playerC: 3},
				Ranking{playerB: 1, playerA: 2, playerC: 3},
			},
			Eligibility{NoWin: []Competitor{playerC}},
		},
		{
			"always first has no loss",
			Corpus{
				Ranking{playerA: 1, playerB: 2, playerC: 3},
				Ranking{playerA: 1, playerC: 2, playerB: 3},
			},
			Eligibility{NoLoss: []Competitor{playerA}},
		},
		{
			"healthy corpus",
			Corpus{
				Ranking{playerA: 1, playerB: 2, playerC: 3},
				Ranking{playerC: 1, playerA: 2, playerB: 3},
				Ranking{playerB: 1, playerC: 2, playerA: 3},
			},
			Eligibility{},
		},
		{
			"tie at first place credits every co-leader",
			Corpus{
				Ranking{playerA: 1, playerB: 1, playerC: 3},
				Ranking{playerC: 1, playerA: 2, playerB: 2},
			},
			Eligibility{},
		},
	}

	for _, tc := range testcases {
		eligibility, err := Validate(tc.games)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}

		if !reflect.DeepEqual(eligibility, tc.expected) {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.expected, eligibility)
		}
	}
}

func TestValidateContradiction(t *testing.T) {
	// A competitor whose every game is a full tie has neither a win nor a
	// loss on record, which the validator treats as fatal.
	games := Corpus{
		Ranking{playerA: 1, playerB: 1},
		Ranking{playerA: 2, playerB: 2},
	}

	if _, err := Validate(games); err == nil {
		t.Fatal("expected an error for a competitor with neither win nor loss")
	}
}

func TestEligibilityClean(t *testing.T) {
	if !(Eligibility{}).Clean() {
		t.Fatal("empty eligibility should be clean")
	}

	if (Eligibility{NoWin: []Competitor{playerA}}).Clean() {
		t.Fatal("eligibility with violators should not be clean")
	}
}
