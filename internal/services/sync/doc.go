// Package sync owns the lifecycle of a channel session: the connectivity
// check, the background polling loop, the optimistic send path, and user
// verification requests.
//
// High-level flow:
//   - Connect: stop any previous session, dial the channel service, verify
//     connectivity, then poll on a fixed cadence. Every cycle fetches the
//     most recent message window plus the online-user set, reconciles them
//     against the session log, and hands the resulting actions to the
//     presentation boundary.
//   - Send: post immediately, record a pending echo under the identifier the
//     server assigned, and render the message unconfirmed without waiting
//     for the next poll.
//   - Disconnect: cancel the loop and wait for it to fully stop, so a
//     reconnect never races an in-flight fetch from the old session.
//
// The send path and the poll loop mutate the same session log and echo
// table; a per-session mutex serializes them. Network calls are never made
// while holding it.
package sync
