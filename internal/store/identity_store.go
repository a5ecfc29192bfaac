package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"parley/internal/crypto"
	"parley/internal/domain"
)

const idFilename = "identity.json.enc"

// IdentityFileStore persists the local identity to disk.
type IdentityFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir.
func NewIdentityFileStore(dir string) *IdentityFileStore {
	return &IdentityFileStore{dir: dir}
}

// SaveIdentity seals the identity and writes it to disk atomically.
func (s *IdentityFileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)

	ct, err := seal(passphrase, raw)
	if err != nil {
		return err
	}
	return atomicWrite(filepath.Join(s.dir, idFilename), ct, 0o600)
}

// LoadIdentity reads and opens the sealed identity.
func (s *IdentityFileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, idFilename))
	if err != nil {
		return domain.Identity{}, err
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	defer crypto.Wipe(pt)

	var id domain.Identity
	if err := json.Unmarshal(pt, &id); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// Compile-time assertion that IdentityFileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
