package storage

import (
	"os"
	"testing"
)

func TestJSONStoreSaveLoadDelete(t *testing.T) {
	s, err := NewJSONStore(t.TempDir(), "session.json")
	if err != nil {
		t.Fatal(err)
	}

	var empty map[string]string
	if err := s.Load(&empty); err != nil || empty != nil {
		t.Fatalf("missing file: err=%v value=%v", err, empty)
	}
	if s.Exists() {
		t.Fatal("file should not exist yet")
	}

	if err := s.Save(map[string]string{"token": "abc"}); err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := s.Load(&got); err != nil || got["token"] != "abc" {
		t.Fatalf("Load: err=%v value=%v", err, got)
	}

	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("perm = %v", info.Mode().Perm())
	}

	if err := s.Delete(); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if s.Exists() {
		t.Fatal("file should be gone")
	}
}
