package domain

import "time"

// Message is one chat message as assigned and timestamped by the channel
// server. Messages are immutable; the client only appends them to its
// session log, never mutates them.
type Message struct {
	ID        string    `json:"id"`
	Creator   string    `json:"creatorName"`
	PublicKey string    `json:"publicKey"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`

	// Signature is the hex Ed25519 signature over the authorship payload
	// (creator, key, text). Messages from clients predating signing carry
	// none and cannot be verified.
	Signature string `json:"signature,omitempty"`
}

// Profile is the identity a message is attributed to: a display name plus
// the hex-encoded public key that disambiguates accounts sharing a name.
type Profile struct {
	Name      string `json:"name"`
	PublicKey string `json:"publicKey"`
}

// Authored reports whether m was written by p. A message with an empty
// public key never matches, even when the names agree.
func (p Profile) Authored(m Message) bool {
	if m.PublicKey == "" {
		return false
	}
	return m.Creator == p.Name && m.PublicKey == p.PublicKey
}
