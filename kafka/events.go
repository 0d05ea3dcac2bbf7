package kafka

import "time"

// ReviewEvent is published when a review is created, edited or deleted
type ReviewEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ReviewID  uint      `json:"review_id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

// FavoriteEvent is published when a favorite is added or removed
type FavoriteEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	FavoriteID uint      `json:"favorite_id"`
	UserID     uint      `json:"user_id"`
	ProductID  uint      `json:"product_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// EntityDeletedEvent is consumed from the user and product services. Only
// the id matching the event type is set.
type EntityDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id,omitempty"`
	ProductID uint      `json:"product_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Consumed event types
const (
	EventTypeUserDeleted    = "user.deleted"
	EventTypeProductDeleted = "product.deleted"
)

// Kafka topics
const (
	TopicFeedbackEvents = "feedback-events"
	TopicUserEvents     = "user-events"
	TopicProductEvents  = "product-events"
)
