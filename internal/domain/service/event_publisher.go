package service

import (
	"context"
	"time"
)

// Domain event names published by the marketplace.
const (
	EventAccountRegistered = "account.registered"
	EventCouponRedeemed    = "coupon.redeemed"
)

// DomainEvent is the payload published for marketplace happenings.
type DomainEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Name       string    `json:"name"`
	AccountID  string    `json:"account_id"`
	ResourceID string    `json:"resource_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing domain events.
// Publishing is best-effort and synchronous within the request; failures are
// logged by callers, never surfaced.
type EventPublisher interface {
	// PublishEvent publishes a domain event.
	PublishEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
