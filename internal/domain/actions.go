package domain

import "time"

// Action is one instruction delivered to the presentation boundary. Actions
// within a batch are applied in order; a batch for one poll cycle is fully
// delivered before the next cycle is reconciled.
type Action interface{ isAction() }

// NewMessage tells the boundary to render one message it has not seen.
type NewMessage struct {
	ID        string
	Creator   string
	PublicKey string
	Text      string
	CreatedAt time.Time

	// Trusted marks the author as verified (or as the local user).
	Trusted bool
	// Grouped merges this message visually with the one rendered before it.
	Grouped bool
	// Unconfirmed marks an optimistic local echo awaiting server confirmation.
	Unconfirmed bool
	// ScrollToBottom reflects whether the viewport was bottom-anchored before
	// this batch was produced; the boundary decides whether to follow.
	ScrollToBottom bool
}

// ResolveEcho clears the unconfirmed treatment from an optimistic render.
// Handle is the key the boundary indexed that render under.
type ResolveEcho struct {
	ID     string
	Handle string
}

// ReplaceUserList swaps the online-user sidebar wholesale. Names arrive
// sorted; the boundary may skip the redraw when nothing changed.
type ReplaceUserList struct {
	Names []string
}

func (NewMessage) isAction()      {}
func (ResolveEcho) isAction()     {}
func (ReplaceUserList) isAction() {}

// LifecycleKind enumerates connection state changes reported to the boundary.
type LifecycleKind int

const (
	Connecting LifecycleKind = iota
	Connected
	ConnectionFailed
	Disconnected
)

// LifecycleEvent carries one connection state change. Channel is set for
// Connected; Err is set for ConnectionFailed when a cause is known.
type LifecycleEvent struct {
	Kind    LifecycleKind
	Channel string
	Err     error
}
