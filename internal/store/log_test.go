package store_test

import (
	"testing"
	"time"

	"parley/internal/domain"
	"parley/internal/store"
)

func msg(id, creator string) domain.Message {
	return domain.Message{
		ID:        id,
		Creator:   creator,
		PublicKey: "ab12",
		Text:      "hello",
		CreatedAt: time.Unix(1700000000, 0),
	}
}

func TestLog_AppendDeduplicates(t *testing.T) {
	l := store.NewLog()

	if !l.Append(msg("1", "bob")) {
		t.Fatal("first append rejected")
	}
	if l.Append(msg("1", "bob")) {
		t.Fatal("duplicate identifier accepted")
	}
	if l.Len() != 1 {
		t.Fatalf("len = %d, want 1", l.Len())
	}
}

func TestLog_PreservesArrivalOrder(t *testing.T) {
	l := store.NewLog()
	for _, id := range []string{"3", "1", "2"} {
		l.Append(msg(id, "bob"))
	}

	got := l.Messages()
	for i, want := range []string{"3", "1", "2"} {
		if got[i].ID != want {
			t.Fatalf("position %d: got id %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestLog_Lookup(t *testing.T) {
	l := store.NewLog()
	l.Append(msg("9", "alice"))

	if !l.Contains("9") {
		t.Fatal("Contains(9) = false")
	}
	if l.Contains("10") {
		t.Fatal("Contains(10) = true for unknown id")
	}

	m, ok := l.Get("9")
	if !ok || m.Creator != "alice" {
		t.Fatalf("Get(9) = %+v, %v", m, ok)
	}
}
