// Package reconcile merges a freshly fetched message batch into the session
// log and decides what the presentation boundary must do about it.
//
// For every message in a batch, in fetch order, the engine either:
//   - skips it (identifier already known),
//   - resolves a pending local echo (the server-confirmed copy of a message
//     the user just sent), or
//   - emits a render action carrying trust and grouping metadata.
//
// The engine is pure with respect to I/O: it reads and mutates only the
// structures handed to it, so the caller owns all locking.
package reconcile
