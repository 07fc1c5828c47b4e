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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/luce/pkg/internal/util"
)

// ErrUninformative is reported for a game record with fewer than two
// participants. Such a game ranks nobody against anybody and would produce
// ill-defined terms inside the estimator, so it is rejected at the door.
var ErrUninformative = errors.New("corpus: game has fewer than two participants")

// gameRecord is the external encoding of a single game.
type gameRecord struct {
	GameID string       `json:"gameID"`
	Users  []userRecord `json:"users"`
}

type userRecord struct {
	Username string `json:"username"`
	UserID   string `json:"userID"`
	Rank     int    `json:"rank"`
}

// Load reads game records from the given JSON files and assembles them into
// a Corpus. Records are deduplicated by their game identifier across all
// files (first occurrence wins) and ordered by game identifier in natural
// order. Malformed records abort the load.
func Load(filenames ...string) (Corpus, error) {
	var records []gameRecord
	for _, filename := range filenames {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}

		var batch []gameRecord
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("load %s: %w", filename, err)
		}

		logrus.Infof("Read %d game records from \x1b[33m%s\x1b[0m", len(batch), filename)
		records = append(records, batch...)
	}

	seen := make(map[string]bool, len(records))
	uniques := make([]gameRecord, 0, len(records))
	for _, record := range records {
		if seen[record.GameID] {
			continue
		}

		seen[record.GameID] = true
		uniques = append(uniques, record)
	}

	sort.SliceStable(uniques, func(i, j int) bool {
		return util.NaturalLess(uniques[i].GameID, uniques[j].GameID)
	})

	games := make(Corpus, 0, len(uniques))
	for _, record := range uniques {
		ranking, err := record.ranking()
		if err != nil {
			return nil, err
		}

		games = append(games, ranking)
	}

	logrus.Infof("%d games loaded", len(games))
	return games, nil
}

// ranking converts a raw game record into a Ranking, verifying the record's
// required fields along the way.
func (record gameRecord) ranking() (Ranking, error) {
	if record.GameID == "" {
		return nil, fmt.Errorf("corpus: game record without a game identifier")
	}

	ranking := make(Ranking, len(record.Users))
	for _, user := range record.Users {
		if user.Username == "" && user.UserID == "" {
			return nil, fmt.Errorf("corpus: game %s: participant without an identity", record.GameID)
		}

		if user.Rank < 1 {
			return nil, fmt.Errorf(
				"corpus: game %s: invalid finish position %d for %s (%s)",
				record.GameID, user.Rank, user.Username, user.UserID,
			)
		}

		player := NewCompetitor(fmt.Sprintf("%s (%s)", user.Username, user.UserID))
		if _, found := ranking[player]; found {
			return nil, fmt.Errorf("corpus: game %s: duplicate participant %s", record.GameID, player)
		}

		ranking[player] = user.Rank
	}

	if !ranking.Informative() {
		return nil, fmt.Errorf("corpus: game %s: %w", record.GameID, ErrUninformative)
	}

	return ranking, nil
}
