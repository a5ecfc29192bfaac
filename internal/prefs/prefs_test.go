package prefs_test

import (
	"testing"

	"parley/internal/prefs"
)

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := prefs.NewStore(dir)
	if got := s.GetString("server", "default"); got != "default" {
		t.Fatalf("empty store returned %q", got)
	}

	s.SetString("server", "http://localhost:8080")
	s.SetString("username", "zoe")
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Fresh store over the same directory sees the saved values.
	s2 := prefs.NewStore(dir)
	if got := s2.GetString("server", ""); got != "http://localhost:8080" {
		t.Fatalf("server = %q", got)
	}
	if got := s2.GetString("username", ""); got != "zoe" {
		t.Fatalf("username = %q", got)
	}
}

func TestStore_SaveWithoutChanges(t *testing.T) {
	s := prefs.NewStore(t.TempDir())
	if err := s.Save(); err != nil {
		t.Fatalf("save on untouched store: %v", err)
	}
}
