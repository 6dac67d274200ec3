package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	cb "github.com/bookhive/recommend-service/pkg/circuit_breaker"
	"github.com/bookhive/recommend-service/pkg/kafka"
)

type StatsLog interface {
	Log(userName, action, bookUid string) error
}

// statsLog publishes audit events through a circuit breaker: with the
// broker down, events are dropped instead of stalling every request.
type statsLog struct {
	producer sarama.SyncProducer
	topic    string
	breaker  cb.CircuitBreaker
}

func NewStatsLog(producer sarama.SyncProducer, topic string) *statsLog {
	return &statsLog{
		producer: producer,
		topic:    topic,
		breaker:  cb.NewCircuitBreaker(20, 30*time.Second, 0.5, 5),
	}
}

func (l *statsLog) Log(userName, action, bookUid string) error {
	event := kafka.EventStats{
		ID:        uuid.New().String(),
		UserName:  userName,
		Action:    action,
		BookUid:   bookUid,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return l.breaker.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
		_, _, err := l.producer.SendMessage(msg)
		return err
	})
}

// nopStatsLog drops everything; used when no broker is configured and
// in handler tests.
type nopStatsLog struct{}

func NewNopStatsLog() *nopStatsLog { return &nopStatsLog{} }

func (*nopStatsLog) Log(string, string, string) error { return nil }
