package reconcile

import (
	"time"

	"parley/internal/domain"
	"parley/internal/store"
)

// groupWindow is the maximum gap between consecutive messages of the same
// identity for them to merge into one visual block.
const groupWindow = time.Minute

// Engine computes the render delta for one fetch batch. One engine serves
// one session; it carries the grouping cursor across calls.
type Engine struct {
	self   domain.Profile
	oracle domain.TrustOracle

	// prev is the last rendered message, confirmed or optimistic. Grouping
	// compares against the row the reader sees directly above the new one,
	// which the confirmed log alone cannot tell while sends are pending.
	prev    domain.Message
	hasPrev bool
}

// New returns an engine reconciling on behalf of self, consulting oracle
// for trust verdicts.
func New(self domain.Profile, oracle domain.TrustOracle) *Engine {
	return &Engine{self: self, oracle: oracle}
}

// Merge folds batch into log, resolving pending echoes against echoes, and
// returns the actions to deliver, in batch order. atBottom is the viewport
// snapshot taken before this call; it is stamped onto every render action.
//
// Per message:
//  1. Known identifier: skip, it was already rendered.
//  2. Append to the log.
//  3. Self-authored and pending: emit ResolveEcho instead of a second
//     render (the optimistic render already happened at send time).
//  4. Otherwise emit NewMessage with trust and grouping metadata.
func (e *Engine) Merge(
	batch []domain.Message,
	log *store.Log,
	echoes *store.EchoTable,
	atBottom bool,
) []domain.Action {
	var actions []domain.Action

	for _, m := range batch {
		if log.Contains(m.ID) {
			continue
		}
		log.Append(m)

		if e.self.Authored(m) {
			if echo, ok := echoes.Resolve(m.ID); ok {
				actions = append(actions, domain.ResolveEcho{ID: m.ID, Handle: echo.Handle})
				continue
			}
			// Echo already resolved, or the message came from another
			// session of the same identity: render it like any other.
		}

		actions = append(actions, domain.NewMessage{
			ID:             m.ID,
			Creator:        m.Creator,
			PublicKey:      m.PublicKey,
			Text:           m.Text,
			CreatedAt:      m.CreatedAt,
			Trusted:        e.trusted(m),
			Grouped:        e.hasPrev && grouped(e.prev, m),
			ScrollToBottom: atBottom,
		})
		e.prev, e.hasPrev = m, true
	}
	return actions
}

// OptimisticRender builds the immediate unconfirmed render action for a
// message the user just sent, grouped against the last rendered message.
// The sent message becomes the cursor, so a second send made before the
// first echo resolves still groups against it.
func (e *Engine) OptimisticRender(m domain.Message, atBottom bool) domain.NewMessage {
	r := domain.NewMessage{
		ID:             m.ID,
		Creator:        m.Creator,
		PublicKey:      m.PublicKey,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
		Trusted:        true, // self-authored
		Grouped:        e.hasPrev && grouped(e.prev, m),
		Unconfirmed:    true,
		ScrollToBottom: atBottom,
	}
	e.prev, e.hasPrev = m, true
	return r
}

// trusted is the badge verdict: oracle-verified, or authored by the local
// user (self messages are implicitly trusted in the user's own view).
func (e *Engine) trusted(m domain.Message) bool {
	if e.self.Authored(m) {
		return true
	}
	return e.oracle.CheckUser(m)
}

// grouped reports whether m visually merges with the message before it:
// same name, same key, and created within the group window.
func grouped(prev, m domain.Message) bool {
	if m.Creator != prev.Creator || m.PublicKey != prev.PublicKey {
		return false
	}
	return m.CreatedAt.Sub(prev.CreatedAt) < groupWindow
}
