package events

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageWriter интерфейс для *kafka.Writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
