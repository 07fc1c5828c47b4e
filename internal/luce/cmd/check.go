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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/luce/pkg/luce/corpus"
)

// luce check
func Check() *cobra.Command {
	return &cobra.Command{
		Use:   "check game-file...",
		Short: "Check that every competitor has a win and a loss on record",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`check reads the given game files and reports every competitor who
			never finished ahead of a rival, and every competitor who never
			finished behind one. Those competitors' fitted strengths would
			rest entirely on the synthetic anchor games that rate mixes in,
			so their ratings say little beyond "better than nobody" or
			"worse than nobody".`),
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := corpus.Load(args...)
			if err != nil {
				return err
			}

			eligibility, err := corpus.Validate(games)
			if err != nil {
				return err
			}

			if eligibility.Clean() {
				fmt.Println("\x1b[32mEvery competitor has at least one win and one loss.\x1b[0m")
				return nil
			}

			if len(eligibility.NoWin) > 0 {
				fmt.Printf("\x1b[31mCompetitors with no win\x1b[0m: %d\n", len(eligibility.NoWin))
				for _, player := range eligibility.NoWin {
					fmt.Printf("- %s\n", player)
				}
			}

			if len(eligibility.NoLoss) > 0 {
				fmt.Printf("\x1b[33mCompetitors with no loss\x1b[0m: %d\n", len(eligibility.NoLoss))
				for _, player := range eligibility.NoLoss {
					fmt.Printf("- %s\n", player)
				}
			}

			return nil
		},
	}
}
