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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	luce "laptudirm.com/x/luce/pkg/common"
)

// luce config
func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the rating defaults currently in effect",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := luce.LoadSettings()
			if err != nil {
				return err
			}

			if write, _ := cmd.Flags().GetBool("init"); write {
				if err := settings.Save(); err != nil {
					return err
				}
				logrus.Infof("Wrote \x1b[33m%s\x1b[0m", luce.ConfigFile)
			}

			fmt.Printf("cutoff:         %d\n", settings.Cutoff)
			fmt.Printf("tolerance:      %g\n", settings.Tolerance)
			fmt.Printf("max-iterations: %d\n", settings.MaxIterations)

			return nil
		},
	}

	cmd.Flags().Bool("init", false, "write the defaults to the config file")

	return cmd
}
