package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	stdsync "sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"parley/internal/domain"
	"parley/internal/services/reconcile"
	"parley/internal/store"
)

const (
	// fetchWindow bounds each poll to the most recent messages. There is no
	// since-cursor on the service; identifier dedup absorbs the overlap.
	fetchWindow = 24

	// defaultPollInterval is the pause between poll cycles.
	defaultPollInterval = 500 * time.Millisecond

	// checkpoint bounds how long a stop request can go unobserved.
	checkpoint = 100 * time.Millisecond
)

var (
	// ErrNotConnected is returned by Send when no session is connected.
	ErrNotConnected = errors.New("not connected to a channel")
)

// Dialer builds a channel client for one (endpoint, channel, profile)
// binding. Injected so tests can substitute a fake service.
type Dialer func(endpoint, channel string, self domain.Profile) domain.ChannelClient

// Service runs at most one session at a time.
type Service struct {
	dial      Dialer
	oracle    domain.TrustOracle
	presenter domain.Presenter
	log       zerolog.Logger

	// PollInterval overrides the cycle cadence; zero means the default.
	PollInterval time.Duration

	mu  stdsync.Mutex
	cur *session
}

// session aggregates one connect-to-disconnect lifetime. Its log and echo
// table are created fresh, so nothing leaks across reconnects.
type session struct {
	client domain.ChannelClient
	engine *reconcile.Engine
	msgs   *store.Log
	echoes *store.EchoTable

	// mu serializes the send path against poll-cycle reconciliation.
	mu stdsync.Mutex

	connected atomic.Bool
	cancel    context.CancelFunc
	ctx       context.Context
	done      chan struct{}
}

// New constructs the sync service with the given collaborators.
func New(dial Dialer, oracle domain.TrustOracle, presenter domain.Presenter, log zerolog.Logger) *Service {
	return &Service{dial: dial, oracle: oracle, presenter: presenter, log: log}
}

// Connect tears down any running session, then starts a new one against
// endpoint/channel as self. Outcomes are reported through the presentation
// boundary: ConnectionFailed if the connectivity test fails, Connected when
// polling begins, Disconnected when the loop later stops.
func (s *Service) Connect(endpoint, channel string, self domain.Profile) {
	s.Disconnect()

	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		client: s.dial(endpoint, channel, self),
		engine: reconcile.New(self, s.oracle),
		msgs:   store.NewLog(),
		echoes: store.NewEchoTable(),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()

	s.presenter.Lifecycle(domain.LifecycleEvent{Kind: domain.Connecting})
	go s.run(sess, endpoint, channel)
}

// Disconnect stops the current session and blocks until its background
// activity has fully ceased. Safe to call with no session running.
func (s *Service) Disconnect() {
	s.mu.Lock()
	sess := s.cur
	s.cur = nil
	s.mu.Unlock()

	if sess == nil {
		return
	}
	sess.cancel()
	<-sess.done
}

// Send posts text, records the pending echo, and renders it immediately
// with the unconfirmed treatment. On failure nothing is recorded, so the
// boundary can keep the composed text for retry.
func (s *Service) Send(ctx context.Context, text string) error {
	sess := s.current()
	if sess == nil || !sess.connected.Load() {
		return ErrNotConnected
	}

	m, err := sess.client.Post(ctx, text)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}

	atBottom := s.presenter.ViewportAtBottom()

	sess.mu.Lock()
	if sess.msgs.Contains(m.ID) {
		// The poll loop fetched the confirmed message before we got here;
		// it has already been rendered once.
		sess.mu.Unlock()
		return nil
	}
	sess.echoes.Insert(store.Echo{ID: m.ID, Handle: m.ID})
	render := sess.engine.OptimisticRender(m, atBottom)
	sess.mu.Unlock()

	s.presenter.Apply([]domain.Action{render})
	return nil
}

// RequestVerification forwards the message with the given identifier to the
// trust oracle. Unknown identifiers are a silent no-op.
func (s *Service) RequestVerification(id string) {
	sess := s.current()
	if sess == nil {
		return
	}

	sess.mu.Lock()
	m, ok := sess.msgs.Get(id)
	sess.mu.Unlock()
	if !ok {
		return
	}
	if err := s.oracle.AddVerifiedUser(m); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("verification request failed")
	}
}

func (s *Service) current() *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Service) run(sess *session, endpoint, channel string) {
	defer close(sess.done)

	if !sess.client.Ping(sess.ctx) {
		s.log.Warn().Str("endpoint", endpoint).Msg("connectivity test failed")
		s.presenter.Lifecycle(domain.LifecycleEvent{Kind: domain.ConnectionFailed})
		return
	}

	sess.connected.Store(true)
	s.log.Info().Str("endpoint", endpoint).Str("channel", channel).Msg("connected")
	s.presenter.Lifecycle(domain.LifecycleEvent{Kind: domain.Connected, Channel: channel})

	for {
		s.pollOnce(sess)
		if !s.sleep(sess) {
			break
		}
	}

	sess.connected.Store(false)
	s.log.Info().Str("channel", channel).Msg("disconnected")
	s.presenter.Lifecycle(domain.LifecycleEvent{Kind: domain.Disconnected})
}

// pollOnce runs one fetch-reconcile-deliver cycle. A failed fetch skips the
// cycle and keeps prior state intact; the loop itself never terminates on a
// transient error.
func (s *Service) pollOnce(sess *session) {
	batch, err := sess.client.Messages(sess.ctx, fetchWindow)
	if err != nil {
		s.log.Warn().Err(err).Msg("fetch failed, skipping cycle")
		return
	}
	users, err := sess.client.OnlineUsers(sess.ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("user fetch failed, skipping cycle")
		return
	}

	// Snapshot the anchoring decision before any render action exists.
	atBottom := s.presenter.ViewportAtBottom()

	sess.mu.Lock()
	actions := sess.engine.Merge(batch, sess.msgs, sess.echoes, atBottom)
	sess.mu.Unlock()

	sort.Strings(users)
	actions = append(actions, domain.ReplaceUserList{Names: users})

	s.presenter.Apply(actions)
}

// sleep waits out the poll interval in checkpoint-sized steps and reports
// false once the session is cancelled.
func (s *Service) sleep(sess *session) bool {
	remaining := s.PollInterval
	if remaining <= 0 {
		remaining = defaultPollInterval
	}
	for remaining > 0 {
		step := checkpoint
		if step > remaining {
			step = remaining
		}
		select {
		case <-sess.ctx.Done():
			return false
		case <-time.After(step):
		}
		remaining -= step
	}
	select {
	case <-sess.ctx.Done():
		return false
	default:
		return true
	}
}
