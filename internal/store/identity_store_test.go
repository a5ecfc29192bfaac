package store_test

import (
	"testing"

	"parley/internal/domain"
	"parley/internal/store"
)

func TestIdentity_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	var ids domain.IdentityStore = store.NewIdentityFileStore(home)

	id := domain.Identity{
		EdPub:  domain.Ed25519Public{1},
		EdPriv: domain.Ed25519Private{2},
	}

	if err := ids.SaveIdentity(pass, id); err != nil {
		t.Fatalf("save identity: %v", err)
	}

	got, err := ids.LoadIdentity(pass)
	if err != nil {
		t.Fatalf("load identity: %v", err)
	}
	if got.EdPub != id.EdPub || got.EdPriv != id.EdPriv {
		t.Fatalf("mismatch after load")
	}
}

func TestIdentity_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ids domain.IdentityStore = store.NewIdentityFileStore(home)

	if err := ids.SaveIdentity("correct", domain.Identity{EdPub: domain.Ed25519Public{1}}); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	if _, err := ids.LoadIdentity("wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}
