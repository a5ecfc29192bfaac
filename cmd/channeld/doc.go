// Package main runs the in-memory channel server used by Parley during
// development and tests. It retains a bounded message history per channel and
// tracks which identities have polled recently.
//
// HTTP API
//
//	GET /api/ping
//	    Liveness check. Returns {"status":"ok"}.
//
//	GET /api/channels/{channel}/messages?limit=N
//	    Return the most recent N messages for {channel}, oldest first. If
//	    limit is absent or exceeds the retained history, everything retained
//	    is returned.
//
//	POST /api/channels/{channel}/messages
//	    Store a message {creatorName, publicKey, text, signature}. The
//	    server assigns the identifier and timestamp and echoes the stored
//	    message back.
//
//	GET /api/channels/{channel}/users
//	    Return the sorted display names seen on {channel} within the
//	    presence window.
//
// Requests may carry X-Parley-Name and X-Parley-Key headers; any request so
// identified counts as presence on the addressed channel.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - Each request is logged with method, path, status, latency and remote.
//   - The default listen address is :8080 (PARLEY_ADDR or -addr override).
//
// The server never verifies signatures or keys; it stores what clients claim.
// Authorship verification is entirely a client concern.
package main
