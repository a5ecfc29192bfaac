package main

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"parley/internal/domain"
)

const (
	// historyCap bounds the retained messages per channel.
	historyCap = 500

	// presenceTTL is how long an identity stays "online" after its last
	// request. Clients poll twice a second, so this is generous.
	presenceTTL = 30 * time.Second
)

type channelState struct {
	msgs    []domain.Message
	present map[string]time.Time // display name -> last seen
}

// hub is the whole server state: every channel, its history and presence.
type hub struct {
	mu       sync.RWMutex
	channels map[string]*channelState
	now      func() time.Time
}

func newHub() *hub {
	return &hub{channels: make(map[string]*channelState), now: time.Now}
}

func (h *hub) state(channel string) *channelState {
	cs, ok := h.channels[channel]
	if !ok {
		cs = &channelState{present: make(map[string]time.Time)}
		h.channels[channel] = cs
	}
	return cs
}

// touch records that name was active on channel just now.
func (h *hub) touch(channel, name string) {
	if name == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state(channel).present[name] = h.now()
}

// post assigns an identifier and timestamp, appends the message to the
// channel history, and returns the stored form.
func (h *hub) post(channel string, m domain.Message) domain.Message {
	m.ID = uuid.NewString()
	m.CreatedAt = h.now().UTC()

	h.mu.Lock()
	defer h.mu.Unlock()
	cs := h.state(channel)
	cs.msgs = append(cs.msgs, m)
	if len(cs.msgs) > historyCap {
		cs.msgs = cs.msgs[len(cs.msgs)-historyCap:]
	}
	return m
}

// recent returns up to limit of the newest messages, oldest first. A limit
// of zero or less means everything retained.
func (h *hub) recent(channel string, limit int) []domain.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cs, ok := h.channels[channel]
	if !ok {
		return []domain.Message{}
	}
	msgs := cs.msgs
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out
}

// online returns the sorted names seen on channel within the presence window.
func (h *hub) online(channel string) []string {
	cutoff := h.now().Add(-presenceTTL)

	h.mu.Lock()
	defer h.mu.Unlock()
	cs, ok := h.channels[channel]
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(cs.present))
	for name, seen := range cs.present {
		if seen.Before(cutoff) {
			delete(cs.present, name)
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
