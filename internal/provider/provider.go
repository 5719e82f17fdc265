// Package provider abstracts the external conversational completion
// endpoint behind a small provider/session contract. A session holds one
// continuous conversation; the provider-side turn history is replayed with
// every request so the model observes messages in submission order.
package provider

import (
	"context"
	"errors"
)

// EmptyReplyText is the degraded reply substituted when the provider
// answers successfully but with no usable text.
const EmptyReplyText = "I'm having trouble thinking right now."

// ErrUnavailable indicates the provider cannot be used at all, typically
// because the required API credential is missing from configuration.
var ErrUnavailable = errors.New("chat provider unavailable")

// ChatProvider creates conversational sessions against an external model.
type ChatProvider interface {
	// Model returns the fixed model identifier requests are issued against.
	Model() string

	// NewSession opens a brand-new conversation scoped to the given system
	// instruction. Any previously opened session is unaffected; callers are
	// responsible for discarding stale handles.
	NewSession(ctx context.Context, systemInstruction string) (ChatSession, error)
}

// ChatSession is the opaque handle to one continuous conversation.
// Implementations are not safe for concurrent use; callers must serialize
// Send so the model observes turns in order.
type ChatSession interface {
	// Send forwards one user message and returns the model's textual reply.
	Send(ctx context.Context, text string) (string, error)
}
