package domain

import "context"

// ChannelClient is how we talk to the remote channel service. A client is
// bound to one endpoint, channel and local profile at construction.
type ChannelClient interface {
	// Ping reports whether the service is reachable.
	Ping(ctx context.Context) bool
	// Messages returns the most recent messages up to limit, oldest first.
	Messages(ctx context.Context, limit int) ([]Message, error)
	// OnlineUsers returns the display names currently present in the channel.
	OnlineUsers(ctx context.Context) ([]string, error)
	// Post submits text and returns the stored message with its
	// server-assigned identifier and timestamp.
	Post(ctx context.Context, text string) (Message, error)
}

// TrustOracle decides whether a message's author is verified and accepts
// new verifications.
type TrustOracle interface {
	CheckUser(m Message) bool
	AddVerifiedUser(m Message) error
}

// Presenter is the presentation boundary. Apply and Lifecycle must not
// block the caller; delivery is asynchronous but ordered per caller.
type Presenter interface {
	Apply(batch []Action)
	Lifecycle(ev LifecycleEvent)
	// ViewportAtBottom snapshots whether the view is bottom-anchored. The
	// engine asks before emitting a batch, because asking after insertion
	// would be changed by the insertion itself.
	ViewportAtBottom() bool
}

// IdentityStore persists your long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id Identity) error
	LoadIdentity(passphrase string) (Identity, error)
}

// IdentityService creates and loads the local signing identity.
type IdentityService interface {
	Generate(passphrase string) (Identity, Fingerprint, error)
	Load(passphrase string) (Identity, error)
	Fingerprint(passphrase string) (Fingerprint, error)
}
