package store

import "parley/internal/domain"

// Log is the ordered record of all messages observed this session, with an
// identifier index for O(1) membership tests. Order is arrival order: a
// fetch may interleave known identifiers with new ones, and only genuinely
// new messages are appended, preserving their relative fetch order.
type Log struct {
	msgs  []domain.Message
	index map[string]int
}

// NewLog returns an empty message log.
func NewLog() *Log {
	return &Log{index: make(map[string]int)}
}

// Contains reports whether a message with this identifier was already seen.
func (l *Log) Contains(id string) bool {
	_, ok := l.index[id]
	return ok
}

// Append records m. It returns false without mutating the log when the
// identifier is already present.
func (l *Log) Append(m domain.Message) bool {
	if _, ok := l.index[m.ID]; ok {
		return false
	}
	l.index[m.ID] = len(l.msgs)
	l.msgs = append(l.msgs, m)
	return true
}

// Get returns the message with the given identifier.
func (l *Log) Get(id string) (domain.Message, bool) {
	i, ok := l.index[id]
	if !ok {
		return domain.Message{}, false
	}
	return l.msgs[i], true
}

// Len returns the number of stored messages.
func (l *Log) Len() int { return len(l.msgs) }

// Messages returns a copy of the log in arrival order.
func (l *Log) Messages() []domain.Message {
	out := make([]domain.Message, len(l.msgs))
	copy(out, l.msgs)
	return out
}
