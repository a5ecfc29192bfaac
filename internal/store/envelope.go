package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"parley/internal/crypto"
)

// envelopeVersion is the on-disk format version of the sealed identity.
const envelopeVersion = 1

var errWrongPassphrase = errors.New("wrong passphrase or corrupted identity")

// envelope is the on-disk JSON structure holding the ciphertext and the KDF
// parameters it was sealed under.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"n"`
	R      int    `json:"r"`
	P      int    `json:"p"`
	Sealed []byte `json:"sealed"`
}

// scryptParams are the KDF tunables for sealing. The identity is opened once
// per process, so a deliberately slow derivation costs the user nothing.
func scryptParams() (N, r, p int) { return 1 << 16, 8, 1 }

// seal derives a key from passphrase and encrypts raw into a JSON envelope.
func seal(passphrase string, raw []byte) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	N, r, p := scryptParams()
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	// Zero nonce: every seal derives a fresh salt-bound key, so the
	// key/nonce pair is never reused.
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(envelope{
		V:      envelopeVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Sealed: ct,
	})
}

// open decrypts a JSON envelope using a key derived from passphrase. The
// caller owns the returned plaintext and should wipe it when done.
func open(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.V > envelopeVersion {
		return nil, fmt.Errorf("unsupported identity format version %d", env.V)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Sealed, env.Salt)
	if err != nil {
		return nil, errWrongPassphrase
	}
	return pt, nil
}
