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
	"fmt"
	"sort"
)

// Eligibility is the result of checking the estimator's convergence
// precondition: every competitor must have finished ahead of somebody at
// least once, and behind somebody at least once. Competitors violating
// either half are listed here. The two lists are disjoint.
type Eligibility struct {
	// NoWin lists competitors who never finished ahead of a rival.
	NoWin []Competitor

	// NoLoss lists competitors who never finished behind a rival.
	NoLoss []Competitor
}

// Clean reports whether every competitor satisfies the precondition.
func (e Eligibility) Clean() bool {
	return len(e.NoWin) == 0 && len(e.NoLoss) == 0
}

// Validate checks the eligibility precondition for every competitor in the
// Corpus. A competitor records a win whenever their finish position is
// strictly better than some rival's in the same game, and a loss whenever
// it is strictly worse; under this rule every competitor tied at position 1
// of a game is credited a win. The check is diagnostic: the augmenter
// restores eligibility regardless, but violators indicate competitors
// whose reported strength rests on synthetic games alone.
//
// A competitor with neither a win nor a loss can only occur when every game
// they appear in is a full tie. That carries no ranking information at all
// and is reported as a fatal error rather than a diagnostic.
func Validate(c Corpus) (Eligibility, error) {
	type events struct{ win, loss bool }
	record := make(map[Competitor]*events)

	for _, ranking := range c {
		best, worst := ranking.extremes()

		for player, position := range ranking {
			ev := record[player]
			if ev == nil {
				ev = &events{}
				record[player] = ev
			}

			// Finishing ahead of the last-placed rival is a win, and
			// finishing behind the first-placed rival is a loss.
			ev.win = ev.win || position < worst
			ev.loss = ev.loss || position > best
		}
	}

	var eligibility Eligibility
	for player, ev := range record {
		switch {
		case !ev.win && !ev.loss:
			return Eligibility{}, fmt.Errorf("corpus: %s has neither a win nor a loss", player)
		case !ev.win:
			eligibility.NoWin = append(eligibility.NoWin, player)
		case !ev.loss:
			eligibility.NoLoss = append(eligibility.NoLoss, player)
		}
	}

	sortCompetitors(eligibility.NoWin)
	sortCompetitors(eligibility.NoLoss)

	return eligibility, nil
}

// extremes returns the best (lowest) and worst (highest) finish positions
// recorded in the Ranking.
func (r Ranking) extremes() (best int, worst int) {
	first := true
	for _, position := range r {
		if first || position < best {
			best = position
		}
		if first || position > worst {
			worst = position
		}
		first = false
	}

	return best, worst
}

func sortCompetitors(players []Competitor) {
	sort.Slice(players, func(i, j int) bool {
		return players[i].String() < players[j].String()
	})
}
