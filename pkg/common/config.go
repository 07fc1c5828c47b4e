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

package luce

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"
)

// Settings are the tunables of a rating run. Values on the command line
// override the config file, which overrides the built-in defaults.
type Settings struct {
	// Cutoff is the number of competitors in the reported standings.
	Cutoff int `yaml:"cutoff"`

	// Tolerance is the estimator's convergence threshold.
	Tolerance float64 `yaml:"tolerance"`

	// MaxIterations caps the estimator's fixed point loop.
	MaxIterations int `yaml:"max-iterations"`
}

func DefaultSettings() Settings {
	return Settings{
		Cutoff:        20,
		Tolerance:     1e-9,
		MaxIterations: 100_000,
	}
}

// Save writes the settings to ConfigFile, creating the data directory if
// it does not exist yet.
func (settings Settings) Save() error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(Directory, 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return os.WriteFile(ConfigFile, data, FilePermissions)
}

// LoadSettings reads the operator's defaults from ConfigFile. A missing
// file yields the built-in defaults; a file that cannot be parsed or that
// sets nonsensical values is an error.
func LoadSettings() (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(ConfigFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return settings, nil
	case err != nil:
		return settings, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("config %s: %w", ConfigFile, err)
	}

	switch {
	case settings.Cutoff < 1:
		return settings, fmt.Errorf("config %s: cutoff must be at least 1", ConfigFile)
	case settings.Tolerance <= 0:
		return settings, fmt.Errorf("config %s: tolerance must be positive", ConfigFile)
	case settings.MaxIterations < 1:
		return settings, fmt.Errorf("config %s: max-iterations must be at least 1", ConfigFile)
	}

	return settings, nil
}
