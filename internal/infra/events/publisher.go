package events

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher публикует события ресторанов в Kafka
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// batchTimeout публикация синхронная и идет по одному событию на команду,
// поэтому пачку не ждем
const batchTimeout = 10 * time.Millisecond

// NewKafkaWriter создает writer, который раскладывает сообщения по партициям по ключу:
// события одного ресторана попадают в одну партицию и сохраняют порядок
func NewKafkaWriter(brokers []string, topic string, writeTimeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: batchTimeout,
		WriteTimeout: writeTimeout,
		RequiredAcks: kafka.RequireOne,
	}
}

// PublishOpeningHoursChanged ключ сообщения - id ресторана
func (p *Publisher) PublishOpeningHoursChanged(ctx context.Context, event OpeningHoursChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: PublishOpeningHoursChanged - marshal event=%s: %v", ErrEncodeEvent, event.EventID, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RestaurantID.String()),
		Value: payload,
		Time:  event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("%w: PublishOpeningHoursChanged - restaurant=%s: %v", ErrPublish, event.RestaurantID, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда Kafka выключена в конфигурации
type NopPublisher struct{}

func (NopPublisher) PublishOpeningHoursChanged(context.Context, OpeningHoursChanged) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
