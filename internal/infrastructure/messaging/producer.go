package messaging

import (
	"context"
	"encoding/json"
	"log"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var producerTracer = otel.Tracer("messaging/producer")

// MessageWriter is the part of *kafka.Writer the producer uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes order events keyed by order id, so every event of one
// order lands on the same partition.
type Producer struct {
	writer MessageWriter
	topic  string
}

var _ interfaces.IOrderEventPublisher = (*Producer)(nil)

func NewProducer(brokers []string, topic string) *Producer {
	return NewProducerWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           100 * time.Millisecond,
		RequiredAcks:           kafka.RequireAll,
	}, topic)
}

func NewProducerWithWriter(w MessageWriter, topic string) *Producer {
	return &Producer{writer: w, topic: topic}
}

func (p *Producer) PublishOrderPaid(ctx context.Context, event entities.OrderPaidEvent) error {
	return p.Publish(ctx, strconv.Itoa(event.OrderID), "order.paid", event)
}

func (p *Producer) Publish(ctx context.Context, key, eventType string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:     []byte(key),
		Value:   data,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(eventType)}},
	}

	ctx, span := producerTracer.Start(ctx, "send "+p.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("send"),
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(p.topic),
			semconv.MessagingKafkaMessageKey(key),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, NewMessageCarrier(&msg))

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("[events][producer] publish failed topic=%s key=%s type=%s err=%v", p.topic, key, eventType, err)
		return err
	}

	log.Printf("[events][producer] published topic=%s key=%s type=%s", p.topic, key, eventType)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
