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

// Package plackett estimates competitor strengths under the Plackett-Luce
// choice model. Each competitor has a positive strength parameter gamma,
// and the probability of an observed finishing order is the product of
// strength-proportional selection probabilities at each successive "pick
// the best of the remaining" step. Given a corpus of observed rankings the
// package computes the maximum-likelihood gammas with Hunter's
// minorization-maximization fixed point.
//
// The fixed point is only well-defined when every competitor has at least
// one recorded win and one recorded loss; see corpus.Augment, which makes
// that hold unconditionally.
package plackett

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/luce/pkg/luce/corpus"
)

// Default values for the Options fields.
const (
	DefaultTolerance     = 1e-9
	DefaultMaxIterations = 100_000
)

// ErrNoConvergence is reported when the convergence statistic fails to
// drop below the tolerance within the iteration cap. The published
// algorithm has no convergence proof for ill-conditioned corpora, so the
// cap turns a potentially endless loop into a diagnosable failure.
var ErrNoConvergence = errors.New("plackett: no convergence within the iteration limit")

// Options configures a single estimation run.
type Options struct {
	// Tolerance is the absolute threshold on the convergence statistic,
	// the sum of squared per-competitor strength changes between two
	// consecutive iterations. Defaults to DefaultTolerance.
	Tolerance float64

	// MaxIterations caps the number of fixed point iterations. Defaults
	// to DefaultMaxIterations.
	MaxIterations int

	// Observer, if set, is invoked after every iteration with the
	// iteration number (starting at 1) and the current convergence
	// statistic.
	Observer func(iteration int, gdiff float64)
}

func (options *Options) setDefaults() {
	if options.Tolerance <= 0 {
		options.Tolerance = DefaultTolerance
	}

	if options.MaxIterations <= 0 {
		options.MaxIterations = DefaultMaxIterations
	}
}

// Estimate runs the minorization-maximization fixed point over the given
// corpus and returns the unnormalized strength parameter of every
// competitor appearing in it. Only the relative magnitudes of the returned
// values are meaningful.
//
// Every ranking in the corpus must have at least two participants, and
// every competitor must have at least one win and one loss on record.
// Estimate fails fast on the former; a violation of the latter surfaces
// either as a zero-denominator error or as ErrNoConvergence.
func Estimate(games corpus.Corpus, options Options) (map[corpus.Competitor]float64, error) {
	options.setDefaults()

	if len(games) == 0 {
		return nil, errors.New("plackett: empty corpus")
	}

	for _, ranking := range games {
		if !ranking.Informative() {
			return nil, errors.New("plackett: corpus contains a game with fewer than two participants")
		}
	}

	players := games.Players()

	// The numerator of the update is fixed across iterations: the number
	// of games in which the competitor did not finish last.
	wins := make(map[corpus.Competitor]int, len(players))
	for _, ranking := range games {
		for player, position := range ranking {
			if position < ranking.Size() {
				wins[player]++
			}
		}
	}

	gammas := make(map[corpus.Competitor]float64, len(players))
	for player := range players {
		gammas[player] = 1 / float64(len(players))
	}

	pgdiff := 0.0
	for iteration := 1; iteration <= options.MaxIterations; iteration++ {
		denoms, err := denominators(games, gammas)
		if err != nil {
			return nil, err
		}

		// The whole parameter set is updated simultaneously from the
		// previous iteration's values.
		next := make(map[corpus.Competitor]float64, len(players))
		gdiff := 0.0
		for player := range players {
			denom := denoms[player]
			if denom == 0 {
				return nil, fmt.Errorf("plackett: zero denominator for %s: no win on record", player)
			}

			gamma := float64(wins[player]) / denom
			delta := gamma - gammas[player]
			gdiff += delta * delta
			next[player] = gamma
		}

		gammas = next

		if options.Observer != nil {
			options.Observer(iteration, gdiff)
		}

		if iteration > 1 && gdiff > pgdiff {
			logrus.Warnf(
				"convergence statistic increased on iteration %d: %.4e > %.4e",
				iteration, gdiff, pgdiff,
			)
		}
		pgdiff = gdiff

		if gdiff <= options.Tolerance {
			logrus.Tracef("converged after %d iterations, gd=%.2e", iteration, gdiff)
			return gammas, nil
		}
	}

	return nil, fmt.Errorf("%w (%d iterations, gd=%.2e)", ErrNoConvergence, options.MaxIterations, pgdiff)
}

// denominators computes the per-competitor denominator of the update from
// the current strength estimates. Conceptually every ranking is a sequence
// of elimination steps, one per distinct finish position: at the step for
// position p the competitors who finished at p or worse are still in the
// running, and each of them accumulates the inverse of the summed strength
// of that remaining field. Competitors eliminated before a step contribute
// and receive nothing for it.
func denominators(games corpus.Corpus, gammas map[corpus.Competitor]float64) (map[corpus.Competitor]float64, error) {
	denoms := make(map[corpus.Competitor]float64, len(gammas))

	for _, ranking := range games {
		places := make(map[int]bool, ranking.Size())
		for _, position := range ranking {
			places[position] = true
		}

		for place := range places {
			remaining := 0.0
			for player, position := range ranking {
				if position >= place {
					remaining += gammas[player]
				}
			}

			if remaining == 0 {
				return nil, fmt.Errorf("plackett: zero remaining strength at position %d", place)
			}

			term := 1 / remaining
			for player, position := range ranking {
				if position >= place {
					denoms[player] += term
				}
			}
		}
	}

	return denoms, nil
}
