package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	favoritedomain "github.com/tair/feedback-service/internal/favorite/domain"
	reviewdomain "github.com/tair/feedback-service/internal/review/domain"
)

func TestPublishReviewEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	var got ReviewEvent
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &got)
	})

	p := NewPublisherWithProducer(producer, TopicFeedbackEvents)
	review := &reviewdomain.Review{ID: 7, UserID: 1, ProductID: 10, Rating: 4}
	require.NoError(t, p.PublishReviewEvent(context.Background(), reviewdomain.EventReviewCreated, review))

	assert.Equal(t, reviewdomain.EventReviewCreated, got.EventType)
	assert.Equal(t, uint(7), got.ReviewID)
	assert.Equal(t, uint(10), got.ProductID)
	assert.Equal(t, 4, got.Rating)
	assert.Len(t, got.EventID, 36)
	assert.False(t, got.Timestamp.IsZero())
}

func TestPublishFavoriteEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	var got FavoriteEvent
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "product_11" {
			return errors.New("unexpected key " + string(key))
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		return json.Unmarshal(value, &got)
	})

	p := NewPublisherWithProducer(producer, TopicFeedbackEvents)
	favorite := &favoritedomain.Favorite{ID: 3, UserID: 2, ProductID: 11}
	require.NoError(t, p.PublishFavoriteEvent(context.Background(), favoritedomain.EventFavoriteAdded, favorite))

	assert.Equal(t, favoritedomain.EventFavoriteAdded, got.EventType)
	assert.Equal(t, uint(3), got.FavoriteID)
	assert.Equal(t, uint(2), got.UserID)
}

func TestPublish_ProducerFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer, TopicFeedbackEvents)
	err := p.PublishReviewEvent(context.Background(), reviewdomain.EventReviewDeleted, &reviewdomain.Review{ID: 1})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.PublishReviewEvent(context.Background(), reviewdomain.EventReviewCreated, &reviewdomain.Review{}))
	assert.NoError(t, p.PublishFavoriteEvent(context.Background(), favoritedomain.EventFavoriteAdded, &favoritedomain.Favorite{}))
}

func message(eventType string, value []byte) *sarama.ConsumerMessage {
	msg := &sarama.ConsumerMessage{Topic: TopicUserEvents, Value: value}
	if eventType != "" {
		msg.Headers = []*sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
			{Key: []byte("event_id"), Value: []byte("evt-1")},
		}
	}
	return msg
}

func TestHandleMessage(t *testing.T) {
	c := newConsumer(nil, "feedback-service", []string{TopicUserEvents})
	var received []EntityDeletedEvent
	c.RegisterHandler(EventTypeUserDeleted, func(_ context.Context, event EntityDeletedEvent) error {
		received = append(received, event)
		return nil
	})
	c.RegisterHandler(EventTypeProductDeleted, func(context.Context, EntityDeletedEvent) error {
		return errors.New("database down")
	})
	h := &consumerGroupHandler{consumer: c}
	ctx := context.Background()

	assert.True(t, h.handleMessage(ctx, message(EventTypeUserDeleted, []byte(`{"user_id":5}`))))
	require.Len(t, received, 1)
	assert.Equal(t, uint(5), received[0].UserID)
	assert.Equal(t, EventTypeUserDeleted, received[0].EventType)
	assert.Equal(t, "evt-1", received[0].EventID)

	assert.False(t, h.handleMessage(ctx, message("", []byte(`{}`))), "no event type")
	assert.False(t, h.handleMessage(ctx, message("user.created", []byte(`{}`))), "no handler")
	assert.False(t, h.handleMessage(ctx, message(EventTypeUserDeleted, []byte(`not json`))))
	assert.False(t, h.handleMessage(ctx, message(EventTypeProductDeleted, []byte(`{"product_id":1}`))))
	assert.Len(t, received, 1)
}
