package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndHistory(t *testing.T) {
	store := openTestStore(t)

	for _, moves := range []int{14, 9, 21} {
		if _, err := store.RecordSolve("03-ring", moves); err != nil {
			t.Fatalf("RecordSolve() failed: %v", err)
		}
	}
	if _, err := store.RecordSolve("01-first-link", 2); err != nil {
		t.Fatalf("RecordSolve() failed: %v", err)
	}

	entries, err := store.History("03-ring", 10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 solves, got %d", len(entries))
	}
	for _, e := range entries {
		if e.LevelID != "03-ring" {
			t.Errorf("History leaked level %q", e.LevelID)
		}
	}
}

func TestStoreHistoryLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordSolve("02-pocket-loop", (i+1)*3)
	}

	entries, err := store.History("02-pocket-loop", 3)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 entries with limit, got %d", len(entries))
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	// No solves yet
	_, solved, err := store.BestMoves("03-ring")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if solved {
		t.Error("BestMoves should report unsolved for an empty level")
	}

	store.RecordSolve("03-ring", 14)
	store.RecordSolve("03-ring", 9)
	store.RecordSolve("03-ring", 21)

	best, solved, err := store.BestMoves("03-ring")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if !solved || best != 9 {
		t.Errorf("BestMoves() = %d, %v; want 9, true", best, solved)
	}
}

func TestStoreCompleted(t *testing.T) {
	store := openTestStore(t)

	done, err := store.Completed("03-ring")
	if err != nil {
		t.Fatalf("Completed() failed: %v", err)
	}
	if done {
		t.Error("Unrecorded level should not be completed")
	}

	store.RecordSolve("03-ring", 9)

	done, err = store.Completed("03-ring")
	if err != nil {
		t.Fatalf("Completed() failed: %v", err)
	}
	if !done {
		t.Error("Recorded level should be completed")
	}
}

func TestStoreAllProgress(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("03-ring", 14)
	store.RecordSolve("03-ring", 9)
	store.RecordSolve("01-first-link", 2)

	progress, err := store.AllProgress()
	if err != nil {
		t.Fatalf("AllProgress() failed: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("Expected progress for 2 levels, got %d", len(progress))
	}

	// Ordered by level ID
	if progress[0].LevelID != "01-first-link" || progress[1].LevelID != "03-ring" {
		t.Errorf("Progress not ordered by level ID: %v", progress)
	}
	if progress[1].Solves != 2 || progress[1].BestMoves != 9 {
		t.Errorf("Ring progress = %+v, want 2 solves with best 9", progress[1])
	}
}

func TestStoreClearProgress(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("03-ring", 9)
	store.RecordSolve("01-first-link", 2)

	if err := store.ClearProgress("03-ring"); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}

	done, _ := store.Completed("03-ring")
	if done {
		t.Error("Cleared level should not be completed")
	}
	done, _ = store.Completed("01-first-link")
	if !done {
		t.Error("Other levels should not be affected by clearing")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
