package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer messageWriter
	topic  string
	log    *zap.Logger
}

func NewProducer(brokers []string, topic string, log *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer, topic: topic, log: log}
}

// PublishBookingCreated writes the event keyed by booking id so that all events of one
// booking land on the same partition.
func (p *Producer) PublishBookingCreated(ctx context.Context, evt BookingCreated) error {
	evt.Type = TypeBookingCreated
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	key := strconv.FormatInt(evt.BookingID, 10)
	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write booking event: %w", err)
	}

	p.log.Debug("booking event published", zap.String("topic", p.topic), zap.String("key", key))
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
