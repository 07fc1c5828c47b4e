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

// Package rating post-processes raw strength estimates into the reported
// standings: the anchor is removed, competitors are ranked by strength,
// the list is cut off at a configurable size, and the retained values are
// renormalized to sum to one.
package rating

import (
	"errors"
	"fmt"
	"sort"

	"laptudirm.com/x/luce/pkg/luce/corpus"
)

// DefaultCutoff is the default number of competitors in the standings.
const DefaultCutoff = 20

// ErrNoAnchor is reported when the estimates handed to Standings do not
// contain the anchor competitor. The estimator only ever runs on augmented
// corpora, so a missing anchor means a contract break between pipeline
// stages, not a data problem.
var ErrNoAnchor = errors.New("rating: anchor missing from the strength estimates")

// Rating is a single standings entry.
type Rating struct {
	Competitor corpus.Competitor
	Value      float64
}

// Standings converts the estimator's raw output into the reported top-N
// list. The anchor's entry is discarded, and the remaining competitors are
// passed through Top.
func Standings(gammas map[corpus.Competitor]float64, cutoff int) ([]Rating, error) {
	if _, found := gammas[corpus.Anchor()]; !found {
		return nil, ErrNoAnchor
	}

	ratings := make([]Rating, 0, len(gammas)-1)
	for player, gamma := range gammas {
		if player.IsAnchor() {
			continue
		}

		ratings = append(ratings, Rating{Competitor: player, Value: gamma})
	}

	return Top(ratings, cutoff), nil
}

// Top sorts the ratings by descending value, breaking ties by ascending
// competitor identity, truncates the list to the cutoff, and renormalizes
// the retained values to sum to one. The normalization is deliberately
// over the retained subset only: competitors below the cutoff do not
// affect the reported proportions. A cutoff below one keeps everybody.
//
// Top is idempotent: applying it to its own output returns the same list.
func Top(ratings []Rating, cutoff int) []Rating {
	top := make([]Rating, len(ratings))
	copy(top, ratings)

	sort.Slice(top, func(i, j int) bool {
		if top[i].Value != top[j].Value {
			return top[i].Value > top[j].Value
		}

		return top[i].Competitor.String() < top[j].Competitor.String()
	})

	if cutoff > 0 && len(top) > cutoff {
		top = top[:cutoff]
	}

	total := 0.0
	for _, rating := range top {
		total += rating.Value
	}

	if total != 0 {
		for i := range top {
			top[i].Value /= total
		}
	}

	return top
}

// Line formats a single standings row for the report.
func Line(rank int, rating Rating) string {
	return fmt.Sprintf("%d: %.4f - %s", rank, rating.Value, rating.Competitor)
}
