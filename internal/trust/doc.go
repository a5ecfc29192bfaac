// Package trust keeps the local keyring of verified chat identities.
//
// An identity is the pair (display name, public key); two accounts may share
// a display name, so the keyring is keyed by public key and a lookup must
// match both halves. The keyring answers the trust-badge question for every
// rendered message and records new verifications requested by the user.
//
// State is a JSON file under the configured home directory, guarded by an
// internal mutex.
package trust
