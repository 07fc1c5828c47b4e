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
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeGameFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	first := writeGameFile(t, "first.json", `[
		{"gameID": "10", "users": [
			{"username": "alice", "userID": "1", "rank": 1},
			{"username": "bob",   "userID": "2", "rank": 2}
		]},
		{"gameID": "2", "users": [
			{"username": "bob",   "userID": "2", "rank": 1},
			{"username": "carol", "userID": "3", "rank": 2}
		]}
	]`)

	// The second file repeats game 10, which must be dropped.
	second := writeGameFile(t, "second.json", `[
		{"gameID": "10", "users": [
			{"username": "alice", "userID": "1", "rank": 2},
			{"username": "bob",   "userID": "2", "rank": 1}
		]},
		{"gameID": "3", "users": [
			{"username": "alice", "userID": "1", "rank": 1},
			{"username": "carol", "userID": "3", "rank": 1}
		]}
	]`)

	games, err := Load(first, second)
	if err != nil {
		t.Fatal(err)
	}

	if len(games) != 3 {
		t.Fatalf("expected 3 unique games, got %d", len(games))
	}

	// Natural order of the identifiers: 2, 3, 10.
	alice := NewCompetitor("alice (1)")
	bob := NewCompetitor("bob (2)")

	if games[0][bob] != 1 {
		t.Fatalf("expected game 2 first, got %v", games[0])
	}

	if games[2][alice] != 1 || games[2][bob] != 2 {
		t.Fatalf("expected the first occurrence of game 10 to win, got %v", games[2])
	}
}

func TestLoadMalformed(t *testing.T) {
	testcases := []struct {
		name     string
		contents string
	}{
		{
			"single participant",
			`[{"gameID": "1", "users": [{"username": "alice", "userID": "1", "rank": 1}]}]`,
		},
		{
			"missing game identifier",
			`[{"users": [
				{"username": "alice", "userID": "1", "rank": 1},
				{"username": "bob", "userID": "2", "rank": 2}
			]}]`,
		},
		{
			"invalid finish position",
			`[{"gameID": "1", "users": [
				{"username": "alice", "userID": "1", "rank": 0},
				{"username": "bob", "userID": "2", "rank": 2}
			]}]`,
		},
		{
			"participant without identity",
			`[{"gameID": "1", "users": [
				{"rank": 1},
				{"username": "bob", "userID": "2", "rank": 2}
			]}]`,
		},
		{
			"duplicate participant",
			`[{"gameID": "1", "users": [
				{"username": "alice", "userID": "1", "rank": 1},
				{"username": "alice", "userID": "1", "rank": 2}
			]}]`,
		},
		{
			"not json",
			`game 1: alice beat bob`,
		},
	}

	for _, tc := range testcases {
		path := writeGameFile(t, "games.json", tc.contents)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestLoadUninformative(t *testing.T) {
	path := writeGameFile(t, "games.json",
		`[{"gameID": "1", "users": [{"username": "alice", "userID": "1", "rank": 1}]}]`)

	_, err := Load(path)
	if !errors.Is(err, ErrUninformative) {
		t.Fatalf("expected ErrUninformative, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
