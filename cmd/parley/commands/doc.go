// Package commands defines the parley CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init           Create the local identity
//   - fingerprint    Print the identity fingerprint
//   - chat           Connect to a channel and open the chat UI
//
// # Implementation
//
// The root command reads configuration from the environment and builds a
// dependency graph (stores, services, channel client factory) before any
// subcommand runs, so handlers share one app context with a pooled HTTP
// client.
package commands
