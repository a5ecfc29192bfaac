// Package store holds Parley's session state and on-disk persistence.
//
// The in-memory types carry one session's view of a channel:
//   - Log: the ordered, deduplicated record of every message observed.
//   - EchoTable: locally-sent messages awaiting server confirmation.
//
// Neither locks internally; the sync service serializes access between the
// send path and the poll loop.
//
// IdentityFileStore persists the local signing identity under the configured
// home directory, encrypted with a passphrase-derived key.
package store
