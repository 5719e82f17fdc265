package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mystudbud/studbud/internal/models"
)

// NewMessage builds a transcript turn with a fresh id and the current
// wall-clock timestamp in milliseconds.
func NewMessage(role models.Role, text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Transcript is the append-only ordered turn history for one session.
// Turns are never reordered or removed; Reset clears the whole sequence.
type Transcript struct {
	mu       sync.RWMutex
	messages []models.ChatMessage
}

func NewTranscript() *Transcript {
	return &Transcript{messages: make([]models.ChatMessage, 0, 16)}
}

// Append adds a turn at the end. Timestamps are clamped so the sequence
// stays monotonically non-decreasing even if the clock steps backwards.
func (t *Transcript) Append(msg models.ChatMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.messages); n > 0 && msg.Timestamp < t.messages[n-1].Timestamp {
		msg.Timestamp = t.messages[n-1].Timestamp
	}
	t.messages = append(t.messages, msg)
}

// Messages returns a copy of the transcript in append order.
func (t *Transcript) Messages() []models.ChatMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Reset clears the sequence entirely.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = t.messages[:0]
}
