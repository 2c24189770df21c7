package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStorePutAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Get("board"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := store.Put("board", []byte(`[{"name":"Ann"}]`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	got, err := store.Get("board")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != `[{"name":"Ann"}]` {
		t.Errorf("Get() = %s, want stored value", got)
	}

	// Overwrite replaces the whole value
	if err := store.Put("board", []byte(`[]`)); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}
	got, _ = store.Get("board")
	if string(got) != `[]` {
		t.Errorf("Get() after overwrite = %s, want []", got)
	}

	if _, err := store.UpdatedAt("board"); err != nil {
		t.Errorf("UpdatedAt() failed: %v", err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Put("k", []byte("v")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Get("k")
	if err != nil || string(got) != "v" {
		t.Errorf("Get() after reopen = %q, %v; want v", got, err)
	}
}

func TestStoreDelete(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Put("a", []byte("1"))
	store.Put("b", []byte("2"))

	if err := store.Delete("a"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(a) after delete error = %v, want ErrNotFound", err)
	}
	if _, err := store.Get("b"); err != nil {
		t.Errorf("b should not be affected by deleting a: %v", err)
	}

	// Missing key is fine
	if err := store.Delete("missing"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "boards")
	store, err := OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}

	if _, err := store.Get("fruityMatchLeaderboard"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty dir error = %v, want ErrNotFound", err)
	}
	if err := store.Put("fruityMatchLeaderboard", []byte(`[]`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "fruityMatchLeaderboard.json")); err != nil {
		t.Errorf("expected document file: %v", err)
	}
	got, err := store.Get("fruityMatchLeaderboard")
	if err != nil || string(got) != `[]` {
		t.Errorf("Get() = %q, %v; want []", got, err)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected 1 file in store dir, got %d", len(entries))
	}

	if err := store.Delete("fruityMatchLeaderboard"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := store.Delete("fruityMatchLeaderboard"); err != nil {
		t.Errorf("second Delete() = %v, want nil", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	value := []byte("abc")
	store.Put("k", value)
	value[0] = 'z'

	got, _ := store.Get("k")
	if string(got) != "abc" {
		t.Errorf("stored value was aliased: %q", got)
	}
}

func TestOpenBackend(t *testing.T) {
	tmpDir := t.TempDir()
	tests := []struct {
		kind    string
		path    string
		wantErr bool
	}{
		{"sqlite", filepath.Join(tmpDir, "a.db"), false},
		{"", filepath.Join(tmpDir, "b.db"), false},
		{"file", filepath.Join(tmpDir, "docs"), false},
		{"memory", "", false},
		{"redis", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.kind, func(t *testing.T) {
			b, err := OpenBackend(tc.kind, tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("OpenBackend(%q) error = %v, wantErr %v", tc.kind, err, tc.wantErr)
			}
			if b != nil {
				b.Close()
			}
		})
	}
}
