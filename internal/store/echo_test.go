package store_test

import (
	"testing"

	"parley/internal/store"
)

func TestEchoTable_ResolveOnce(t *testing.T) {
	tbl := store.NewEchoTable()
	tbl.Insert(store.Echo{ID: "99", Handle: "99"})

	e, ok := tbl.Resolve("99")
	if !ok || e.Handle != "99" {
		t.Fatalf("Resolve(99) = %+v, %v", e, ok)
	}
	if _, ok := tbl.Resolve("99"); ok {
		t.Fatal("second Resolve(99) succeeded")
	}
	if tbl.Len() != 0 {
		t.Fatalf("len = %d after resolve, want 0", tbl.Len())
	}
}

func TestEchoTable_UnknownID(t *testing.T) {
	tbl := store.NewEchoTable()
	if _, ok := tbl.Resolve("nope"); ok {
		t.Fatal("Resolve of unknown id succeeded")
	}
}
