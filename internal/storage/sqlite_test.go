package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, gameID string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := s.SaveRun(Run{GameID: gameID, Score: sc}); err != nil {
			t.Fatalf("SaveRun(%q, %d) failed: %v", gameID, sc, err)
		}
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"relative.db", "relative.db"},
		{"~/.flappybust/scores.db", filepath.Join(home, ".flappybust/scores.db")},
	}
	for _, tc := range tests {
		got, err := ExpandPath(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ExpandPath(%q) = %q, %v; expected %q", tc.in, got, err, tc.want)
		}
	}
	if !strings.HasPrefix(DefaultPath, "~") {
		t.Errorf("DefaultPath should live under the home directory, got %q", DefaultPath)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTemp(t)
	mustSave(t, store, "flappybust", 10, 5, 20, 5)
	mustSave(t, store, "other", 500)

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"all", 10, []int{20, 10, 5, 5}},
		{"limited", 2, []int{20, 10}},
		{"default limit", 0, []int{20, 10, 5, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := store.TopScores("flappybust", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(entries) != len(tc.want) {
				t.Fatalf("got %d entries, expected %d", len(entries), len(tc.want))
			}
			for i, e := range entries {
				if e.Score != tc.want[i] || e.GameID != "flappybust" {
					t.Errorf("entry %d = %+v, expected score %d", i, e, tc.want[i])
				}
			}
		})
	}

	entries, _ := store.TopScores("flappybust", 10)
	if entries[2].ID > entries[3].ID {
		t.Error("tied scores should keep the earlier run first")
	}
	if entries[0].PlayedAt.IsZero() {
		t.Error("played_at should be populated")
	}
	if entries[0].Difficulty != "fixed" {
		t.Errorf("Difficulty = %q, expected the fixed default", entries[0].Difficulty)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("flappybust")
	if err != nil || high != 0 {
		t.Fatalf("HighScore() on empty store = %d, %v; expected 0", high, err)
	}

	mustSave(t, store, "flappybust", 12, 31, 7)
	high, err = store.HighScore("flappybust")
	if err != nil || high != 31 {
		t.Errorf("HighScore() = %d, %v; expected 31", high, err)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)
	mustSave(t, store, "flappybust", 1, 2)
	mustSave(t, store, "other", 3)

	if err := store.ClearScores("flappybust"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if entries, _ := store.TopScores("flappybust", 10); len(entries) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(entries))
	}
	if entries, _ := store.TopScores("other", 10); len(entries) != 1 {
		t.Error("other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GetGameStats("flappybust")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for an empty store: %+v", empty)
	}

	mustSave(t, store, "flappybust", 10, 20, 30)
	stats, err := store.GetGameStats("flappybust")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 30 || stats.TotalScore != 60 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreSaveRunKeepsDetails(t *testing.T) {
	store := openTemp(t)
	played := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	id, err := store.SaveRun(Run{
		GameID:     "flappybust",
		Score:      17,
		Difficulty: "hard",
		Duration:   42*time.Second + 500*time.Millisecond,
		PlayedAt:   played,
	})
	if err != nil || id <= 0 {
		t.Fatalf("SaveRun() = %d, %v", id, err)
	}

	runs, err := store.TopScores("flappybust", 1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("TopScores() = %v, %v", runs, err)
	}
	got := runs[0]
	if got.ID != id || got.Difficulty != "hard" || got.Duration != 42500*time.Millisecond {
		t.Errorf("run = %+v", got)
	}
	if !got.PlayedAt.Equal(played) {
		t.Errorf("PlayedAt = %v, expected %v", got.PlayedAt, played)
	}

	mustSave(t, store, "flappybust", 3)
	stats, err := store.GetGameStats("flappybust")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TimePlayed != 42500*time.Millisecond {
		t.Errorf("TimePlayed = %v", stats.TimePlayed)
	}
	if stats.LastPlayed.Before(played) {
		t.Errorf("LastPlayed = %v should be the newest run", stats.LastPlayed)
	}
}

func TestStoreMigrationsRecordVersion(t *testing.T) {
	store := openTemp(t)

	var version int
	if err := store.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatal(err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, expected %d", version, len(migrations))
	}
	if err := store.migrate(); err != nil {
		t.Errorf("migrating an up to date database failed: %v", err)
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	first, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	mustSave(t, first, "flappybust", 42)
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if high, _ := second.HighScore("flappybust"); high != 42 {
		t.Errorf("HighScore() after reopen = %d, expected 42", high)
	}
}
