package crypto_test

import (
	"testing"

	"parley/internal/crypto"
	"parley/internal/domain"
)

func TestAuthorship_RoundTrip(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	key := crypto.EncodeKey(pub.Slice())

	m := domain.Message{Creator: "alice", PublicKey: key, Text: "hello"}
	m.Signature = crypto.SignAuthorship(priv, m.Creator, m.PublicKey, m.Text)

	if !crypto.VerifyAuthorship(m) {
		t.Fatal("valid signature rejected")
	}
}

func TestAuthorship_RejectsTampering(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	key := crypto.EncodeKey(pub.Slice())

	signed := domain.Message{Creator: "alice", PublicKey: key, Text: "hello"}
	signed.Signature = crypto.SignAuthorship(priv, signed.Creator, signed.PublicKey, signed.Text)

	cases := []struct {
		name   string
		mutate func(m domain.Message) domain.Message
	}{
		{"text changed", func(m domain.Message) domain.Message { m.Text = "bye"; return m }},
		{"name changed", func(m domain.Message) domain.Message { m.Creator = "mallory"; return m }},
		{"signature stripped", func(m domain.Message) domain.Message { m.Signature = ""; return m }},
		{"signature garbage", func(m domain.Message) domain.Message { m.Signature = "zz"; return m }},
		{"key not hex", func(m domain.Message) domain.Message { m.PublicKey = "nope"; return m }},
	}
	for _, c := range cases {
		if crypto.VerifyAuthorship(c.mutate(signed)) {
			t.Fatalf("%s: forged message verified", c.name)
		}
	}
}

func TestDecodeKey_WrongLength(t *testing.T) {
	if _, err := crypto.DecodeKey("abcd"); err == nil {
		t.Fatal("short key accepted")
	}
}
