// Package chat owns the persona session lifecycle and the transcript. The
// Manager wraps exactly one provider-side conversation at a time; per-turn
// provider failures never surface to the user as errors, they degrade to a
// fixed fallback reply so the conversation can continue.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mystudbud/studbud/internal/provider"
)

// FallbackReply is appended as the model turn when the provider round trip
// fails for a well-formed request.
const FallbackReply = "Sorry, I encountered an error. Please try again."

var (
	// ErrNotInitialized means Send was called before a successful Initialize.
	// Callers should treat this as a sequencing bug and gate the input
	// affordance on Ready().
	ErrNotInitialized = errors.New("chat session not initialized")

	// ErrSendInFlight means a send was attempted while the session was
	// busy: another send awaiting its reply, or a re-initialization in
	// progress. Sends are rejected, not queued.
	ErrSendInFlight = errors.New("chat session is busy")

	// ErrEmptyMessage means the message text was empty or whitespace.
	ErrEmptyMessage = errors.New("message text is empty")
)

// SessionState describes where the manager is in its lifecycle.
type SessionState string

const (
	StateUninitialized SessionState = "uninitialized"
	StateReady         SessionState = "ready"
	StateSending       SessionState = "sending"
	StateFailed        SessionState = "failed"
)

// Manager owns at most one active provider session. It is an explicit
// object carried by the user's application state, so concurrent users each
// get their own and never collide.
type Manager struct {
	provider provider.ChatProvider
	logger   *zap.Logger

	// op serializes Initialize/Send/Close end to end, including the
	// provider round trip. Initialize waits for an in-flight send to
	// resolve before replacing the handle; Send rejects instead of
	// queueing (see ErrSendInFlight).
	op sync.Mutex

	mu      sync.Mutex
	session provider.ChatSession
	state   SessionState
}

// NewManager builds a manager. A nil provider is allowed: the onboarding
// flow stays usable, and the missing configuration is surfaced on the
// first Initialize attempt.
func NewManager(p provider.ChatProvider, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		provider: p,
		logger:   logger,
		state:    StateUninitialized,
	}
}

// Initialize opens a brand-new provider session scoped to the given
// effective instruction, replacing any prior handle. The prior handle's
// provider-side history is abandoned. Fails with provider.ErrUnavailable
// when no provider is configured; no silent fallback.
func (m *Manager) Initialize(ctx context.Context, effectiveInstruction string) error {
	m.op.Lock()
	defer m.op.Unlock()

	if m.provider == nil {
		m.setSession(nil, StateFailed)
		return fmt.Errorf("%w: no chat provider configured", provider.ErrUnavailable)
	}

	session, err := m.provider.NewSession(ctx, effectiveInstruction)
	if err != nil {
		m.setSession(nil, StateFailed)
		m.logger.Error("failed to initialize persona session", zap.Error(err))
		return fmt.Errorf("initializing persona session: %w", err)
	}

	m.setSession(session, StateReady)
	return nil
}

// Send forwards one user message to the active session and returns the
// model's reply. Provider-side failures are logged and swallowed into
// FallbackReply so the chat never crashes; only sequencing and validation
// problems are returned as errors.
func (m *Manager) Send(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}
	if !m.op.TryLock() {
		return "", ErrSendInFlight
	}
	defer m.op.Unlock()

	m.mu.Lock()
	session := m.session
	m.mu.Unlock()
	if session == nil {
		return "", ErrNotInitialized
	}

	m.setState(StateSending)
	defer m.setState(StateReady)

	reply, err := session.Send(ctx, text)
	if err != nil {
		m.logger.Warn("provider request failed, substituting fallback reply", zap.Error(err))
		return FallbackReply, nil
	}
	return reply, nil
}

// Close discards the active handle and returns to the uninitialized
// state. Invoked on logout.
func (m *Manager) Close() {
	m.op.Lock()
	defer m.op.Unlock()
	m.setSession(nil, StateUninitialized)
}

// Ready reports whether a session exists and no send is in flight.
func (m *Manager) Ready() bool {
	return m.State() == StateReady
}

func (m *Manager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) setState(s SessionState) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) setSession(s provider.ChatSession, state SessionState) {
	m.mu.Lock()
	m.session = s
	m.state = state
	m.mu.Unlock()
}
