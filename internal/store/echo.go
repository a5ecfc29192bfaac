package store

// Echo is one locally-sent message awaiting confirmation: the identifier the
// server assigned at send time plus the handle the presentation boundary
// indexed the optimistic render under.
type Echo struct {
	ID     string
	Handle string
}

// EchoTable tracks pending echoes by message identifier. In steady state
// with no outstanding sends the table is empty.
type EchoTable struct {
	pending map[string]Echo
}

// NewEchoTable returns an empty table.
func NewEchoTable() *EchoTable {
	return &EchoTable{pending: make(map[string]Echo)}
}

// Insert records a pending echo.
func (t *EchoTable) Insert(e Echo) {
	t.pending[e.ID] = e
}

// Resolve removes and returns the entry for id, if any. An entry resolves
// exactly once; a second call for the same identifier reports false.
func (t *EchoTable) Resolve(id string) (Echo, bool) {
	e, ok := t.pending[id]
	if ok {
		delete(t.pending, id)
	}
	return e, ok
}

// Len returns the number of unresolved echoes.
func (t *EchoTable) Len() int { return len(t.pending) }
