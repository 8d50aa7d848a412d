// Package identity tracks whether session restoration has completed and who
// the current principal is.
package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
	"github.com/dtroode/gophfeed/internal/notify"
)

// State is the readiness state of a Gate.
type State int

const (
	StateUninitialized State = iota
	StatePending
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePending:
		return "pending"
	case StateSettled:
		return "settled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("identity gate already started")
	// ErrNotSettled is returned by SignIn/SignOut before restoration completes.
	ErrNotSettled = errors.New("identity gate is not settled")
)

// Restorer is the session-restoration routine. It reports the restored
// principal, or ok=false when there is no session to restore. A non-nil
// error means restoration did not complete.
type Restorer func(ctx context.Context) (principal model.Principal, ok bool, err error)

// Settlement is the settled identity of the session.
type Settlement struct {
	Principal     model.Principal
	Authenticated bool
}

// Gate is the single source of truth for session readiness and identity.
type Gate struct {
	mu            sync.RWMutex
	state         State
	principal     model.Principal
	authenticated bool
	ready         chan struct{}
	changes       *notify.Broadcaster[Settlement]
	logger        *logger.Logger
}

// NewGate creates an uninitialized Gate.
func NewGate(logger *logger.Logger) *Gate {
	return &Gate{
		ready:   make(chan struct{}),
		changes: notify.NewBroadcaster[Settlement](1),
		logger:  logger,
	}
}

// Start moves the gate to pending and runs restore in the background. The
// gate settles once restore returns without error. If restore fails the gate
// stays pending for the life of the process.
func (g *Gate) Start(ctx context.Context, restore Restorer) error {
	g.mu.Lock()
	if g.state != StateUninitialized {
		g.mu.Unlock()
		return ErrAlreadyStarted
	}
	g.state = StatePending
	g.mu.Unlock()

	go func() {
		principal, ok, err := restore(ctx)
		if err != nil {
			g.logger.Error("Identity gate: session restoration failed, staying pending", "error", err)
			return
		}
		g.settle(principal, ok)
	}()

	return nil
}

func (g *Gate) settle(principal model.Principal, ok bool) {
	g.mu.Lock()
	g.principal = principal
	g.authenticated = ok
	g.state = StateSettled
	current := g.snapshotLocked()
	close(g.ready)
	g.mu.Unlock()

	g.logger.Debug("Identity gate: settled",
		"authenticated", current.Authenticated,
		"principal_id", current.Principal.ID)
	g.changes.Publish(current)
}

// AwaitReady blocks until the gate is settled or ctx is done, and returns
// the identity carried by the settled gate.
func (g *Gate) AwaitReady(ctx context.Context) (Settlement, error) {
	select {
	case <-g.ready:
	case <-ctx.Done():
		return Settlement{}, fmt.Errorf("wait for session: %w", ctx.Err())
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshotLocked(), nil
}

// Ready returns a channel closed when the gate settles.
func (g *Gate) Ready() <-chan struct{} {
	return g.ready
}

// State returns the current readiness state.
func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// CurrentPrincipal returns the latest known principal. It never blocks and
// reports ok=false while the gate is not settled.
func (g *Gate) CurrentPrincipal() (model.Principal, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.state != StateSettled || !g.authenticated {
		return model.Principal{}, false
	}
	return g.principal, true
}

// Principal implements the principal resolver used by the feed pipelines.
func (g *Gate) Principal(_ context.Context) (model.Principal, bool) {
	return g.CurrentPrincipal()
}

// SignIn replaces the carried principal.
func (g *Gate) SignIn(principal model.Principal) error {
	return g.update(principal, true)
}

// SignOut clears the carried principal.
func (g *Gate) SignOut() error {
	return g.update(model.Principal{}, false)
}

func (g *Gate) update(principal model.Principal, ok bool) error {
	g.mu.Lock()
	if g.state != StateSettled {
		g.mu.Unlock()
		return ErrNotSettled
	}
	g.principal = principal
	g.authenticated = ok
	current := g.snapshotLocked()
	g.mu.Unlock()

	g.changes.Publish(current)
	return nil
}

// RequireIdentity runs render with the current principal. When there is no
// principal it returns ErrLoginRequired instead. The check is a single
// point-in-time read; use Watch to re-evaluate on changes.
func (g *Gate) RequireIdentity(render func(model.Principal) error) error {
	principal, ok := g.CurrentPrincipal()
	if !ok {
		return model.NewError(model.KindAuth, "require identity", model.ErrLoginRequired)
	}
	return render(principal)
}

// Subscribe returns a channel receiving the carried identity after every
// settlement, sign-in and sign-out.
func (g *Gate) Subscribe() (<-chan Settlement, func()) {
	return g.changes.Subscribe()
}

// Watch waits for settlement, calls fn with the current identity and again
// after every change, until ctx is done.
func (g *Gate) Watch(ctx context.Context, fn func(Settlement)) error {
	changes, cancel := g.Subscribe()
	defer cancel()

	if _, err := g.AwaitReady(ctx); err != nil {
		return err
	}
	// The pending signal is covered by the snapshot taken below.
	select {
	case <-changes:
	default:
	}
	current, err := g.AwaitReady(ctx)
	if err != nil {
		return err
	}
	fn(current)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-changes:
			if !ok {
				return nil
			}
			fn(s)
		}
	}
}

func (g *Gate) snapshotLocked() Settlement {
	if !g.authenticated {
		return Settlement{}
	}
	return Settlement{Principal: g.principal, Authenticated: true}
}
