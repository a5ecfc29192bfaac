package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parley/internal/crypto"
	"parley/internal/domain"
	"parley/internal/remote"
)

func newClient(t *testing.T, h http.Handler) *remote.HTTP {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := remote.NewHTTP(srv.URL, "general", domain.Profile{Name: "zoe", PublicKey: "ab12"})
	c.HTTP = srv.Client()
	return c
}

func TestPing(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ping" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))

	if !c.Ping(context.Background()) {
		t.Fatal("ping failed against healthy server")
	}
}

func TestPing_Unreachable(t *testing.T) {
	c := remote.NewHTTP("http://127.0.0.1:1", "general", domain.Profile{Name: "zoe"})
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if c.Ping(ctx) {
		t.Fatal("ping succeeded against closed port")
	}
}

func TestMessages_LimitAndIdentity(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/channels/general/messages" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("limit"); got != "24" {
			t.Errorf("limit = %q, want 24", got)
		}
		if got := r.Header.Get("X-Parley-Name"); got != "zoe" {
			t.Errorf("name header = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]domain.Message{
			{ID: "1", Creator: "bob", Text: "hi", CreatedAt: time.Unix(1700000000, 0)},
		})
	}))

	msgs, err := c.Messages(context.Background(), 24)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != "1" {
		t.Fatalf("unexpected batch: %+v", msgs)
	}
}

func TestPost_RoundTrip(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		var in struct {
			Creator   string `json:"creatorName"`
			PublicKey string `json:"publicKey"`
			Text      string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Message{
			ID: "42", Creator: in.Creator, PublicKey: in.PublicKey,
			Text: in.Text, CreatedAt: time.Now(),
		})
	}))

	m, err := c.Post(context.Background(), "hello")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if m.ID != "42" || m.Creator != "zoe" || m.Text != "hello" {
		t.Fatalf("unexpected stored message: %+v", m)
	}
}

func TestPost_ServerError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	if _, err := c.Post(context.Background(), "hello"); err == nil {
		t.Fatal("expected error from 500 response")
	}
}

func TestPost_SignsOutgoingMessage(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	key := crypto.EncodeKey(pub.Slice())

	var received domain.Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode: %v", err)
		}
		received.ID = "1"
		_ = json.NewEncoder(w).Encode(received)
	}))
	t.Cleanup(srv.Close)

	c := remote.NewHTTP(srv.URL, "general", domain.Profile{Name: "zoe", PublicKey: key})
	c.HTTP = srv.Client()
	c.Sign = func(payload []byte) []byte { return crypto.SignEd25519(priv, payload) }

	if _, err := c.Post(context.Background(), "hello"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if received.Signature == "" {
		t.Fatal("posted message carries no signature")
	}
	if !crypto.VerifyAuthorship(received) {
		t.Fatal("posted signature does not verify against the claimed identity")
	}
}
