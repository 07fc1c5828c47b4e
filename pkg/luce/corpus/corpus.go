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

// Package corpus defines the data model shared by the rating pipeline: the
// competitors, the individual game rankings, and the corpus of rankings the
// strength estimates are computed from. It also provides the supporting
// stages of the pipeline which are not the estimator itself: loading game
// files, filtering by competitor, the eligibility check, and the anchor
// augmentation.
package corpus

import "sort"

// Competitor identifies a single participant across the whole Corpus.
// Competitors are only ever compared for equality; they carry no other
// structure. The reserved anchor participant is a separate variant of the
// type, so it can never collide with an identifier read from an input file.
type Competitor struct {
	id     string
	anchor bool
}

// NewCompetitor returns the Competitor with the given identity string.
func NewCompetitor(id string) Competitor {
	return Competitor{id: id}
}

// Anchor returns the reserved synthetic Competitor used by Augment to
// guarantee every real competitor at least one win and one loss.
func Anchor() Competitor {
	return Competitor{anchor: true}
}

// IsAnchor reports whether the Competitor is the reserved anchor.
func (c Competitor) IsAnchor() bool {
	return c.anchor
}

func (c Competitor) String() string {
	if c.anchor {
		return "<anchor>"
	}

	return c.id
}

// Ranking is the outcome of a single game: a finish position for every
// participant. Positions start at 1 for the winner; a larger position is a
// worse finish. Several participants may share a position, which records a
// tie at that position.
type Ranking map[Competitor]int

// Size returns the number of participants in the Ranking.
func (r Ranking) Size() int {
	return len(r)
}

// Informative reports whether the Ranking carries any information about
// relative competitor strength. A game with fewer than two participants
// ranks nobody against anybody.
func (r Ranking) Informative() bool {
	return len(r) >= 2
}

// Corpus is an ordered sequence of Rankings. The estimator treats it as a
// set; loaders are responsible for deduplicating games before producing it.
type Corpus []Ranking

// Players returns every distinct Competitor appearing in the Corpus.
func (c Corpus) Players() map[Competitor]bool {
	players := make(map[Competitor]bool)
	for _, ranking := range c {
		for player := range ranking {
			players[player] = true
		}
	}

	return players
}

// SortedPlayers returns every distinct Competitor in the Corpus ordered by
// identity, with the anchor last if present. Used wherever a deterministic
// traversal order is needed.
func (c Corpus) SortedPlayers() []Competitor {
	set := c.Players()
	players := make([]Competitor, 0, len(set))
	for player := range set {
		players = append(players, player)
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].anchor != players[j].anchor {
			return players[j].anchor
		}

		return players[i].id < players[j].id
	})

	return players
}
