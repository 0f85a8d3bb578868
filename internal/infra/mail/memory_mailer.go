package mail

import (
	"context"
	"sync"

	"couponhub/internal/domain/service"
)

// MemoryMailer records outbound messages instead of delivering them. It is
// the injectable outbox: tests assert against its recorded calls, and local
// development runs with it so no SMTP relay is needed.
type MemoryMailer struct {
	mu       sync.Mutex
	messages []*service.MailMessage
}

// NewMemoryMailer is the constructor for MemoryMailer.
func NewMemoryMailer() *MemoryMailer {
	return &MemoryMailer{}
}

// Send records the message.
func (m *MemoryMailer) Send(_ context.Context, msg *service.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, msg)

	return nil
}

// Sent returns a snapshot of all recorded messages.
func (m *MemoryMailer) Sent() []*service.MailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*service.MailMessage, len(m.messages))
	copy(out, m.messages)

	return out
}

// Reset clears the recorded messages.
func (m *MemoryMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = nil
}
