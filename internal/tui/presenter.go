package tui

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"parley/internal/domain"
)

// ActionsMsg carries one reconciled batch into the Update loop.
type ActionsMsg []domain.Action

// LifecycleMsg carries a connection state change into the Update loop.
type LifecycleMsg domain.LifecycleEvent

// Presenter bridges the engine to a running Bubble Tea program. It must be
// attached to the program before the engine connects.
type Presenter struct {
	mu sync.Mutex
	p  *tea.Program

	// atBottom mirrors the viewport's anchoring, maintained by the model on
	// every update so the engine can snapshot it without blocking on the UI.
	atBottom atomic.Bool
}

// NewPresenter returns a detached presenter. A fresh view is considered
// bottom-anchored.
func NewPresenter() *Presenter {
	pr := &Presenter{}
	pr.atBottom.Store(true)
	return pr
}

// Attach binds the presenter to the program that will receive deliveries.
func (pr *Presenter) Attach(p *tea.Program) {
	pr.mu.Lock()
	pr.p = p
	pr.mu.Unlock()
}

// Apply forwards a batch to the UI. Never blocks the engine.
func (pr *Presenter) Apply(batch []domain.Action) {
	if p := pr.program(); p != nil {
		p.Send(ActionsMsg(batch))
	}
}

// Lifecycle forwards a connection state change to the UI.
func (pr *Presenter) Lifecycle(ev domain.LifecycleEvent) {
	if p := pr.program(); p != nil {
		p.Send(LifecycleMsg(ev))
	}
}

// ViewportAtBottom reports the last known anchoring of the timeline.
func (pr *Presenter) ViewportAtBottom() bool {
	return pr.atBottom.Load()
}

// setAtBottom is called by the model after viewport mutations.
func (pr *Presenter) setAtBottom(v bool) {
	pr.atBottom.Store(v)
}

func (pr *Presenter) program() *tea.Program {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.p
}

var _ domain.Presenter = (*Presenter)(nil)
