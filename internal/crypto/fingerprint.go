package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"parley/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}

// EncodeKey returns the full hex form of a public key, the representation
// a message carries as Message.PublicKey.
func EncodeKey(pub []byte) string {
	return hex.EncodeToString(pub)
}

// DecodeKey parses the hex form back into a public key.
func DecodeKey(s string) (domain.Ed25519Public, error) {
	var pub domain.Ed25519Public
	b, err := hex.DecodeString(s)
	if err != nil {
		return pub, err
	}
	if len(b) != len(pub) {
		return pub, fmt.Errorf("public key is %d bytes, want %d", len(b), len(pub))
	}
	copy(pub[:], b)
	return pub, nil
}
