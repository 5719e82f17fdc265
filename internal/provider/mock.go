package provider

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider is an offline ChatProvider used for development and tests.
// Failure modes are injectable so callers can exercise their error paths.
type MockProvider struct {
	NewSessionErr error
	SendErr       error
	ReplyFn       func(text string) string

	mu       sync.Mutex
	sessions []*MockSession
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Model() string { return "mock-studbud" }

func (m *MockProvider) NewSession(ctx context.Context, systemInstruction string) (ChatSession, error) {
	if m.NewSessionErr != nil {
		return nil, m.NewSessionErr
	}
	s := &MockSession{provider: m, SystemInstruction: systemInstruction}
	m.mu.Lock()
	m.sessions = append(m.sessions, s)
	m.mu.Unlock()
	return s, nil
}

// Sessions returns every session opened so far, oldest first.
func (m *MockProvider) Sessions() []*MockSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*MockSession, len(m.sessions))
	copy(out, m.sessions)
	return out
}

// MockSession records the messages sent through it.
type MockSession struct {
	provider          *MockProvider
	SystemInstruction string
	Sent              []string
}

func (s *MockSession) Send(ctx context.Context, text string) (string, error) {
	if err := s.provider.SendErr; err != nil {
		return "", err
	}
	s.Sent = append(s.Sent, text)
	if fn := s.provider.ReplyFn; fn != nil {
		return fn(text), nil
	}
	return fmt.Sprintf("Understood. You said: %q", text), nil
}
