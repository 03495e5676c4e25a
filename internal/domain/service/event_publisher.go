package service

import (
	"context"
	"time"
)

// RewardEvent represents a newly attributed reward, published for
// downstream consumers (leaderboards, notifications, analytics).
type RewardEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	UserID         string    `json:"user_id"`
	AttractionID   string    `json:"attraction_id"`
	AttractionName string    `json:"attraction_name"`
	Points         int       `json:"points"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	VisitedAt      time.Time `json:"visited_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRewardEvent publishes a reward-earned event for async processing
	PublishRewardEvent(ctx context.Context, event *RewardEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
