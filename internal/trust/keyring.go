package trust

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"parley/internal/crypto"
	"parley/internal/domain"
)

const keyringFile = "keyring.json"

// entry is one verified identity as stored on disk.
type entry struct {
	Name      string `json:"name"`
	PublicKey string `json:"publicKey"`
	AddedAt   int64  `json:"addedAt"`
}

// Keyring is a file-backed domain.TrustOracle.
type Keyring struct {
	dir string
	mu  sync.Mutex
}

// NewKeyring returns a keyring rooted at dir.
func NewKeyring(dir string) *Keyring { return &Keyring{dir: dir} }

// CheckUser reports whether the message's author identity is verified. The
// keyring entry must match and the message's signature must check out, so a
// copied name and key without the private half earns no badge.
func (k *Keyring) CheckUser(m domain.Message) bool {
	if m.PublicKey == "" || !crypto.VerifyAuthorship(m) {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	entries := make(map[string]entry)
	if err := readJSON(filepath.Join(k.dir, keyringFile), &entries); err != nil {
		return false
	}
	e, ok := entries[m.PublicKey]
	return ok && e.Name == m.Creator
}

// AddVerifiedUser records the message's author identity as verified. Only a
// message whose signature verifies can anchor an entry; anything else would
// let a spoofed message plant a trusted identity.
func (k *Keyring) AddVerifiedUser(m domain.Message) error {
	if m.PublicKey == "" {
		return errors.New("message carries no public key")
	}
	if !crypto.VerifyAuthorship(m) {
		return errors.New("message signature does not verify")
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	path := filepath.Join(k.dir, keyringFile)
	entries := make(map[string]entry)
	if err := readJSON(path, &entries); err != nil {
		return err
	}
	entries[m.PublicKey] = entry{
		Name:      m.Creator,
		PublicKey: m.PublicKey,
		AddedAt:   time.Now().Unix(),
	}
	return writeJSON(path, entries, 0o600)
}

// readJSON best-effort reads path into out; a missing file is not an error.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

var _ domain.TrustOracle = (*Keyring)(nil)
