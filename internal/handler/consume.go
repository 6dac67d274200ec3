package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/model"
)

type addRating func(ctx context.Context, userName, bookUid string, stars int) error

// Consumer feeds rating messages from the rating topic into the
// recommender.
type Consumer struct {
	ratingHandler addRating
	log           *zap.Logger
}

func NewConsumer(rating addRating, log *zap.Logger) *Consumer {
	return &Consumer{
		ratingHandler: rating,
		log:           log.Named("consumer"),
	}
}

// Setup runs at the start of every session, including the sessions a
// rebalance opens, so it must stay safe to call repeatedly.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var req model.RatingMsg
			if err := json.Unmarshal(message.Value, &req); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.ratingHandler(context.Background(), req.Name, req.BookUid, req.Stars); err != nil {
				consumer.log.Error("consumer.ratingHandler", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
