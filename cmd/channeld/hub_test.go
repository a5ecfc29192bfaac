package main

import (
	"context"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"parley/internal/domain"
	"parley/internal/remote"
)

func newTestServer(t *testing.T, h *hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newRouter(h, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, newHub())
	c := remote.NewHTTP(srv.URL, "general", domain.Profile{Name: "alice", PublicKey: "ka"})
	if !c.Ping(context.Background()) {
		t.Fatal("expected ping to succeed")
	}
}

func TestPostAndFetch(t *testing.T) {
	srv := newTestServer(t, newHub())
	ctx := context.Background()
	c := remote.NewHTTP(srv.URL, "general", domain.Profile{Name: "alice", PublicKey: "ka"})

	first, err := c.Post(ctx, "one")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Fatalf("server did not assign id/timestamp: %+v", first)
	}
	if _, err := c.Post(ctx, "two"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, err := c.Post(ctx, "three"); err != nil {
		t.Fatalf("post: %v", err)
	}

	msgs, err := c.Messages(ctx, 2)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Text != "two" || msgs[1].Text != "three" {
		t.Fatalf("wrong window or order: %q, %q", msgs[0].Text, msgs[1].Text)
	}
	if msgs[0].Creator != "alice" || msgs[0].PublicKey != "ka" {
		t.Fatalf("authorship not stored: %+v", msgs[0])
	}
}

func TestChannelsAreIsolated(t *testing.T) {
	srv := newTestServer(t, newHub())
	ctx := context.Background()

	general := remote.NewHTTP(srv.URL, "general", domain.Profile{Name: "alice"})
	other := remote.NewHTTP(srv.URL, "other", domain.Profile{Name: "alice"})

	if _, err := general.Post(ctx, "only in general"); err != nil {
		t.Fatalf("post: %v", err)
	}
	msgs, err := other.Messages(ctx, 10)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("channel leak: %+v", msgs)
	}
}

func TestOnlineUsers_SortedAndExpiring(t *testing.T) {
	h := newHub()
	now := time.Now()
	h.now = func() time.Time { return now }
	srv := newTestServer(t, h)
	ctx := context.Background()

	zoe := remote.NewHTTP(srv.URL, "general", domain.Profile{Name: "zoe", PublicKey: "kz"})
	amy := remote.NewHTTP(srv.URL, "general", domain.Profile{Name: "amy", PublicKey: "ka"})

	if _, err := zoe.Messages(ctx, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, err := amy.Messages(ctx, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	users, err := zoe.OnlineUsers(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if want := []string{"amy", "zoe"}; !reflect.DeepEqual(users, want) {
		t.Fatalf("got %v, want %v", users, want)
	}

	// Advance past the presence window without new activity from amy.
	now = now.Add(presenceTTL + time.Second)
	if _, err := zoe.Messages(ctx, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	users, err = zoe.OnlineUsers(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if want := []string{"zoe"}; !reflect.DeepEqual(users, want) {
		t.Fatalf("got %v, want %v", users, want)
	}
}

func TestPostValidation(t *testing.T) {
	h := newHub()
	srv := newTestServer(t, h)
	ctx := context.Background()

	anon := remote.NewHTTP(srv.URL, "general", domain.Profile{})
	if _, err := anon.Post(ctx, "no author"); err == nil {
		t.Fatal("expected rejection of anonymous post")
	}
	named := remote.NewHTTP(srv.URL, "general", domain.Profile{Name: "bob"})
	if _, err := named.Post(ctx, "   "); err == nil {
		t.Fatal("expected rejection of blank text")
	}
}

func TestHistoryCap(t *testing.T) {
	h := newHub()
	for i := 0; i < historyCap+25; i++ {
		h.post("busy", domain.Message{Creator: "gen", Text: "x"})
	}
	if got := len(h.recent("busy", 0)); got != historyCap {
		t.Fatalf("retained %d messages, want %d", got, historyCap)
	}
}
