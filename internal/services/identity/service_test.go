package identity_test

import (
	"errors"
	"testing"

	"parley/internal/services/identity"
	"parley/internal/store"
)

const goodPassphrase = "Correct-Horse-9-Battery"

func TestGenerate_RoundTrip(t *testing.T) {
	svc := identity.New(store.NewIdentityFileStore(t.TempDir()))

	id, fp, err := svc.Generate(goodPassphrase)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if fp == "" {
		t.Fatal("empty fingerprint")
	}

	loaded, err := svc.Load(goodPassphrase)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.EdPub != id.EdPub {
		t.Fatal("public key changed across save/load")
	}

	fp2, err := svc.Fingerprint(goodPassphrase)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if fp2 != fp {
		t.Fatalf("fingerprint mismatch: %s vs %s", fp2, fp)
	}
}

func TestGenerate_RejectsWeakPassphrase(t *testing.T) {
	svc := identity.New(store.NewIdentityFileStore(t.TempDir()))

	for _, pass := range []string{"", "short", "alllowercaseandlong", "NoSymbols123"} {
		if _, _, err := svc.Generate(pass); !errors.Is(err, identity.ErrWeakPassphrase) {
			t.Fatalf("passphrase %q: err = %v, want ErrWeakPassphrase", pass, err)
		}
	}
}
