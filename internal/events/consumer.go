package events

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

const (
	defaultHandleAttempts = 3
	defaultRetryDelay     = 500 * time.Millisecond
)

type Consumer struct {
	reader messageReader
	log    *zap.Logger

	attempts   int
	retryDelay time.Duration
}

func NewConsumer(brokers []string, groupID, topic string, log *zap.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log:        log,
		attempts:   defaultHandleAttempts,
		retryDelay: defaultRetryDelay,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks until ctx is cancelled or the reader fails. Undecodable messages are logged
// and skipped. A failing handler is retried with a doubling delay; an event that still fails
// is logged and dropped.
func (c *Consumer) Consume(ctx context.Context, handle func(context.Context, BookingCreated) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		evt, err := DecodeBookingCreated(msg.Value)
		if err != nil {
			c.log.Warn("skipping booking event",
				zap.Error(err),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			continue
		}

		if err := c.handleWithRetry(ctx, handle, evt); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.Error("booking event dropped",
				zap.Int64("booking_id", evt.BookingID),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}

func (c *Consumer) handleWithRetry(ctx context.Context, handle func(context.Context, BookingCreated) error, evt BookingCreated) error {
	attempts := c.attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := c.retryDelay

	var err error
	for i := 1; i <= attempts; i++ {
		if err = handle(ctx, evt); err == nil {
			return nil
		}
		if i == attempts {
			break
		}

		c.log.Warn("booking event handler failed, retrying",
			zap.Int64("booking_id", evt.BookingID),
			zap.Int("attempt", i),
			zap.Error(err),
		)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	return err
}
