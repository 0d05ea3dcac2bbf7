package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	favoritedomain "github.com/tair/feedback-service/internal/favorite/domain"
	reviewdomain "github.com/tair/feedback-service/internal/review/domain"
	"github.com/tair/feedback-service/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer, TopicFeedbackEvents), nil
}

// NewPublisherWithProducer creates a publisher on an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// PublishReviewEvent publishes a review lifecycle event
func (p *Publisher) PublishReviewEvent(ctx context.Context, eventType string, review *reviewdomain.Review) error {
	event := ReviewEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		ReviewID:  review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Timestamp: time.Now().UTC(),
	}
	return p.publish(ctx, event.EventID, eventType, event.ProductID, event,
		attribute.Int64("review.id", int64(review.ID)),
	)
}

// PublishFavoriteEvent publishes a favorite lifecycle event
func (p *Publisher) PublishFavoriteEvent(ctx context.Context, eventType string, favorite *favoritedomain.Favorite) error {
	event := FavoriteEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		FavoriteID: favorite.ID,
		UserID:     favorite.UserID,
		ProductID:  favorite.ProductID,
		Timestamp:  time.Now().UTC(),
	}
	return p.publish(ctx, event.EventID, eventType, event.ProductID, event,
		attribute.Int64("favorite.id", int64(favorite.ID)),
	)
}

// publish sends one JSON event keyed by product so a product's events stay ordered
func (p *Publisher) publish(ctx context.Context, eventID, eventType string, productID uint, event any, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", p.topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
			attribute.Int64("product.id", int64(productID)),
		),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(fmt.Sprintf("product_%d", productID)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", p.topic).
			Str("event_type", eventType).
			Uint("product_id", productID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("product_id", productID).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NopPublisher drops every event. Used when Kafka is disabled.
type NopPublisher struct{}

// PublishReviewEvent implements the review event publisher
func (NopPublisher) PublishReviewEvent(context.Context, string, *reviewdomain.Review) error {
	return nil
}

// PublishFavoriteEvent implements the favorite event publisher
func (NopPublisher) PublishFavoriteEvent(context.Context, string, *favoritedomain.Favorite) error {
	return nil
}
