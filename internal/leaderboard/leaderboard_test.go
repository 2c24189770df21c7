package leaderboard

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/daylonsoh/fruity-match-game/internal/storage"
)

func fullBoard(lowest int) Board {
	b := make(Board, 0, Capacity)
	for i := Capacity - 1; i >= 0; i-- {
		b = append(b, Entry{Name: fmt.Sprintf("p%d", i), Score: lowest + i*10, Date: "2024-01-01"})
	}
	return b
}

func isSortedDesc(b Board) bool {
	for i := 1; i < len(b); i++ {
		if b[i-1].Score < b[i].Score {
			return false
		}
	}
	return true
}

func TestQualifies(t *testing.T) {
	full := fullBoard(100) // lowest = 100

	tests := []struct {
		name     string
		score    int
		board    Board
		expected bool
	}{
		{"empty board", 0, Board{}, true},
		{"partial board any score", 1, Board{{Name: "a", Score: 500, Date: "2024-01-01"}}, true},
		{"full board higher", 101, full, true},
		{"full board tie with last", 100, full, false},
		{"full board lower", 50, full, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Qualifies(tc.score, tc.board); got != tc.expected {
				t.Errorf("Qualifies(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

func TestInsertSortsAndCaps(t *testing.T) {
	b := fullBoard(100)
	out, rank := Insert(b, Entry{Name: "new", Score: 145, Date: "2024-02-02"})

	if len(out) != Capacity {
		t.Fatalf("len = %d, expected %d", len(out), Capacity)
	}
	if !isSortedDesc(out) {
		t.Errorf("board not sorted descending: %v", out)
	}
	if out[rank-1].Name != "new" {
		t.Errorf("rank %d points at %q, expected new entry", rank, out[rank-1].Name)
	}
	if out.Lowest() != 110 {
		t.Errorf("lowest = %d, expected 110 after truncation", out.Lowest())
	}
	// Input untouched
	if len(b) != Capacity || b[Capacity-1].Score != 100 {
		t.Error("Insert mutated its input")
	}
}

func TestInsertTiesKeepInsertionOrder(t *testing.T) {
	b := Board{
		{Name: "first", Score: 200, Date: "2024-01-01"},
		{Name: "second", Score: 100, Date: "2024-01-01"},
	}
	out, rank := Insert(b, Entry{Name: "third", Score: 200, Date: "2024-01-02"})

	names := []string{out[0].Name, out[1].Name, out[2].Name}
	expected := []string{"first", "third", "second"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("order = %v, expected %v", names, expected)
	}
	if rank != 2 {
		t.Errorf("rank = %d, expected 2", rank)
	}
}

func TestInsertFallsOff(t *testing.T) {
	_, rank := Insert(fullBoard(100), Entry{Name: "low", Score: 100, Date: "2024-01-01"})
	if rank != 0 {
		t.Errorf("rank = %d, expected 0 for entry that fell off", rank)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"wrong shape", `{"name":"a"}`},
		{"negative score", `[{"name":"a","score":-1,"date":"2024-01-01"}]`},
		{"bad date", `[{"name":"a","score":1,"date":"yesterday"}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			if !errors.Is(err, ErrCorruptPersistedState) {
				t.Errorf("Decode() error = %v, expected ErrCorruptPersistedState", err)
			}
		})
	}
}

func TestDecodeNormalizes(t *testing.T) {
	b, err := Decode([]byte(`[{"name":"lo","score":1,"date":"2024-01-01"},{"name":"hi","score":9,"date":"2024-01-01"}]`))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if b[0].Name != "hi" {
		t.Errorf("expected sorted board, got %v", b)
	}

	null, err := Decode([]byte("null"))
	if err != nil || len(null) != 0 {
		t.Errorf("Decode(null) = %v, %v; expected empty board", null, err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	boards := []Board{
		{},
		{{Name: "Ann", Score: 500, Date: "2024-05-06"}},
		fullBoard(0),
	}

	for i, b := range boards {
		data, err := Encode(b)
		if err != nil {
			t.Fatalf("board %d: Encode() failed: %v", i, err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("board %d: Decode() failed: %v", i, err)
		}
		if !reflect.DeepEqual(got, b) {
			t.Errorf("board %d: round trip = %v, expected %v", i, got, b)
		}

		again, _ := Encode(got)
		if string(again) != string(data) {
			t.Errorf("board %d: re-encode changed bytes", i)
		}
	}
}

func TestEncodeFormat(t *testing.T) {
	data, _ := Encode(Board{{Name: "Ann", Score: 500, Date: "2024-05-06"}})
	expected := `[{"name":"Ann","score":500,"date":"2024-05-06"}]`
	if string(data) != expected {
		t.Errorf("Encode() = %s, expected %s", data, expected)
	}

	empty, _ := Encode(nil)
	if string(empty) != "[]" {
		t.Errorf("Encode(nil) = %s, expected []", empty)
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)
}

func TestStoreAddPersists(t *testing.T) {
	backend := storage.NewMemoryStore()
	store := NewStore(backend, WithClock(fixedNow))

	board, rank, err := store.Add("Ann", 500)
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if rank != 1 || len(board) != 1 {
		t.Fatalf("Add() = %v rank %d, expected single entry at rank 1", board, rank)
	}
	if board[0].Date != "2024-03-09" {
		t.Errorf("date = %q, expected 2024-03-09", board[0].Date)
	}

	// A fresh store over the same backend sees the entry
	reloaded := NewStore(backend)
	if !reflect.DeepEqual(reloaded.Board(), board) {
		t.Errorf("reloaded = %v, expected %v", reloaded.Board(), board)
	}
}

func TestStoreAddRejectsNonQualifying(t *testing.T) {
	backend := storage.NewMemoryStore()
	store := NewStore(backend)
	if err := store.Save(fullBoard(100)); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	before, _ := backend.Get(DefaultKey)

	board, rank, err := store.Add("late", 100)
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if rank != 0 {
		t.Errorf("rank = %d, expected 0", rank)
	}
	for _, e := range board {
		if e.Name == "late" {
			t.Error("non-qualifying score was inserted")
		}
	}
	after, _ := backend.Get(DefaultKey)
	if string(before) != string(after) {
		t.Error("non-qualifying add rewrote persisted state")
	}
}

func TestStoreAddInvariant(t *testing.T) {
	store := NewStore(storage.NewMemoryStore())
	for i := 0; i < 25; i++ {
		board, _, err := store.Add(fmt.Sprintf("p%d", i), (i*37)%200)
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		if len(board) > Capacity {
			t.Fatalf("len = %d exceeds capacity", len(board))
		}
		if !isSortedDesc(board) {
			t.Fatalf("board not sorted after add %d: %v", i, board)
		}
	}
}

func TestStoreLoadCorruptRecovers(t *testing.T) {
	backend := storage.NewMemoryStore()
	backend.Put(DefaultKey, []byte("not json"))

	store := NewStore(backend)
	if len(store.Board()) != 0 {
		t.Errorf("expected empty board after corrupt load, got %v", store.Board())
	}

	// Store is usable afterwards
	if _, _, err := store.Add("Ann", 10); err != nil {
		t.Fatalf("Add() after corrupt load failed: %v", err)
	}
}

func TestStoreSaveLoadIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lb.db")
	backend, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer backend.Close()

	store := NewStore(backend, WithKey("custom"))
	original := fullBoard(5)
	if err := store.Save(original); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	first, _ := backend.Get("custom")

	if err := store.Save(store.Load()); err != nil {
		t.Fatalf("Save(Load()) failed: %v", err)
	}
	second, _ := backend.Get("custom")

	if string(first) != string(second) {
		t.Errorf("Save(Load()) changed persisted bytes:\n%s\n%s", first, second)
	}
	if !reflect.DeepEqual(store.Load(), original) {
		t.Errorf("Load() = %v, expected %v", store.Load(), original)
	}
}

func TestStoreClear(t *testing.T) {
	backend := storage.NewMemoryStore()
	store := NewStore(backend)
	store.Add("Ann", 10)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if len(store.Board()) != 0 {
		t.Error("board not empty after Clear()")
	}
	if _, err := backend.Get(DefaultKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("persisted doc still present: %v", err)
	}
}

func TestBoardRank(t *testing.T) {
	b := fullBoard(0)
	if got := b.Rank(b[3]); got != 4 {
		t.Errorf("Rank() = %d, expected 4", got)
	}
	if got := b.Rank(Entry{Name: "ghost"}); got != 0 {
		t.Errorf("Rank() of missing entry = %d, expected 0", got)
	}
}
