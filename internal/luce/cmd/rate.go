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

package cmd

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	luce "laptudirm.com/x/luce/pkg/common"
	"laptudirm.com/x/luce/pkg/luce/corpus"
	"laptudirm.com/x/luce/pkg/luce/plackett"
	"laptudirm.com/x/luce/pkg/luce/rating"
)

const SPIN = 31

// luce rate
func Rate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate game-file...",
		Short: "Estimate competitor strengths from recorded games",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`rate reads multi-way game results from the given JSON files and
			estimates a strength parameter for every competitor under the
			Plackett-Luce choice model, fitted with an iterative
			minorization-maximization fixed point.

			Games are deduplicated by their identifier across all the given
			files. A synthetic anchor competitor with exactly one win and
			one loss against every real competitor is mixed in before the
			fit and removed again before reporting, which keeps the fit
			well-defined even for competitors who always or never won.

			The top competitors are printed in order of strength, with the
			reported strengths renormalized to sum to 1.`),
		RunE: runRate,
	}

	cmd.Flags().IntP("cutoff", "n", rating.DefaultCutoff, "number of competitors to report")
	cmd.Flags().Float64("tolerance", plackett.DefaultTolerance, "convergence tolerance of the fixed point")
	cmd.Flags().Int("max-iterations", plackett.DefaultMaxIterations, "iteration cap of the fixed point")
	cmd.Flags().StringSlice("only", nil, "keep only games involving these competitors")
	cmd.Flags().StringSlice("exclude", nil, "drop games involving these competitors")

	return cmd
}

func runRate(cmd *cobra.Command, args []string) error {
	settings, err := luce.LoadSettings()
	if err != nil {
		return err
	}

	if cmd.Flag("cutoff").Changed {
		settings.Cutoff, _ = cmd.Flags().GetInt("cutoff")
	}
	if cmd.Flag("tolerance").Changed {
		settings.Tolerance, _ = cmd.Flags().GetFloat64("tolerance")
	}
	if cmd.Flag("max-iterations").Changed {
		settings.MaxIterations, _ = cmd.Flags().GetInt("max-iterations")
	}

	games, err := corpus.Load(args...)
	if err != nil {
		return err
	}

	if only, _ := cmd.Flags().GetStringSlice("only"); len(only) > 0 {
		games = games.Only(only)
	}
	if exclude, _ := cmd.Flags().GetStringSlice("exclude"); len(exclude) > 0 {
		games = games.Exclude(exclude)
	}

	logrus.Infof("%d competitors", len(games.Players()))

	// Diagnostic only: the augmentation below restores eligibility, but
	// the operator should know whose rating rests on synthetic games.
	eligibility, err := corpus.Validate(games)
	if err != nil {
		return err
	}

	for _, player := range eligibility.NoWin {
		logrus.Warnf("%s has no win", player)
	}
	for _, player := range eligibility.NoLoss {
		logrus.Warnf("%s has no loss", player)
	}
	if !eligibility.Clean() {
		logrus.Warnf(
			"%d competitors always lost, %d always won",
			len(eligibility.NoWin), len(eligibility.NoLoss),
		)
	}

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
	s.Start()

	gammas, err := plackett.Estimate(corpus.Augment(games), plackett.Options{
		Tolerance:     settings.Tolerance,
		MaxIterations: settings.MaxIterations,
		Observer: func(iteration int, gdiff float64) {
			s.Suffix = fmt.Sprintf(" iteration %d gd=%.2e", iteration, gdiff)
		},
	})

	s.Stop()
	if err != nil {
		return err
	}

	standings, err := rating.Standings(gammas, settings.Cutoff)
	if err != nil {
		return err
	}

	for i, entry := range standings {
		fmt.Println(rating.Line(i+1, entry))
	}

	return nil
}
