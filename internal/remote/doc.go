// Package remote provides an HTTP implementation of the domain.ChannelClient
// interface used by Parley.
//
// The channel service is the source of truth: it assigns message identifiers
// and timestamps and tracks who is online. This package offers a concrete
// HTTP client for one (endpoint, channel, profile) binding.
//
// Supported operations include:
//   - Testing connectivity before a session starts polling.
//   - Fetching the most recent window of channel messages.
//   - Fetching the current online-user set.
//   - Posting a new message and returning its stored form.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// full URL, and status text to aid diagnostics.
package remote
