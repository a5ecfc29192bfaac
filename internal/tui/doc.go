// Package tui is the terminal presentation boundary for Parley.
//
// It renders the engine's stream of render actions with Bubble Tea: a
// connect form, the message timeline (with grouped, unconfirmed and
// verified treatments), and the online-user sidebar. User intents (connect,
// send, verify) flow back into the engine, which runs on its own
// goroutines; delivery into the UI goes through Program.Send, which keeps
// batches asynchronous and ordered.
package tui
