// Package events publishes domain events of the movie review catalog to
// RabbitMQ. Publishing is best effort: callers log failures and carry on,
// since the store write has already committed.
package events

import (
	"context"
	"time"
)

// Queue names, one durable queue per event type.
const (
	QueueUserRegistered = "user.registered"
	QueueReviewCreated  = "review.created"
)

// UserRegistered is emitted after a successful registration.
type UserRegistered struct {
	UserID     uint      `json:"user_id"`
	Email      string    `json:"email"`
	Role       *string   `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ReviewCreated is emitted after a review is stored.
type ReviewCreated struct {
	ReviewID   uint      `json:"review_id"`
	UserID     uint      `json:"user_id"`
	MovieID    uint      `json:"movie_id"`
	Rate       int       `json:"rate"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher sends an event to the named queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, event any) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
func (Noop) Close() error                               { return nil }
