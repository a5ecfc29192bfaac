package crypto

import (
	"crypto/ed25519"
	"encoding/hex"

	"parley/internal/domain"
)

// AuthPayload is the byte string a client signs to claim authorship of text.
// The creator name and key are bound in so a valid signature cannot be
// replayed under another identity.
func AuthPayload(creator, publicKey, text string) []byte {
	return []byte(creator + "\x00" + publicKey + "\x00" + text)
}

// SignAuthorship returns the hex signature an outgoing message carries.
func SignAuthorship(priv domain.Ed25519Private, creator, publicKey, text string) string {
	return hex.EncodeToString(SignEd25519(priv, AuthPayload(creator, publicKey, text)))
}

// VerifyAuthorship checks the signature a message carries against its
// claimed identity. Messages without a decodable key or signature fail.
func VerifyAuthorship(m domain.Message) bool {
	pub, err := DecodeKey(m.PublicKey)
	if err != nil {
		return false
	}
	sig, err := hex.DecodeString(m.Signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	return VerifyEd25519(pub, AuthPayload(m.Creator, m.PublicKey, m.Text), sig)
}
