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
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0644

var (
	// Directory is luce's home-relative data directory.
	Directory = filepath.Join(xdg.Home, "luce")

	// ConfigFile holds the operator's default settings.
	ConfigFile = filepath.Join(Directory, "config.yaml")
)
