package domain

// Ed25519Public is a signing public key.
type Ed25519Public [32]byte

func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is a signing private key (ed25519.PrivateKey layout).
type Ed25519Private [64]byte

func (k Ed25519Private) Slice() []byte { return k[:] }

// Identity holds the long-term signing keys stored locally. The public half,
// hex encoded, is what travels on every message as Message.PublicKey.
type Identity struct {
	EdPub  Ed25519Public
	EdPriv Ed25519Private
}

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
