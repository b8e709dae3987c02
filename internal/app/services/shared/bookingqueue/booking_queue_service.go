package bookingqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StandardQueueName   = "booking_events_queue"
	DeadLetterQueueName = "booking_events_dlq"
)

// Message is the payload stored in RabbitMQ for every booking lifecycle
// event. Body carries the event-specific data verbatim.
type Message struct {
	ID          string          `json:"id"`
	Event       string          `json:"event"`
	Body        json.RawMessage `json:"body"`
	FailedCount int             `json:"failed_count"`
}

// Service manages the durable booking-event queues.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	prefetch int
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService initializes the queue service, declares durable queues, enables confirms, and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		StandardQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	// Publisher confirms so an unroutable broker failure is surfaced to the caller
	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		prefetch: prefetch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// Publish wraps the payload into a Message and enqueues it to the standard
// queue. It satisfies the QueueService contract used by the usecases.
func (s *Service) Publish(ctx context.Context, event string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := Message{
		ID:    uuid.NewString(),
		Event: event,
		Body:  body,
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("BookingQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
		zap.String("event", event))

	return s.publish(ctx, StandardQueueName, msg)
}

// Reenqueue publishes the (possibly modified) message to the tail of the standard queue and confirms.
func (s *Service) Reenqueue(ctx context.Context, msg Message) error {
	return s.publish(ctx, StandardQueueName, msg)
}

// EnqueueToDeadQueue publishes the message to DLQ and confirms.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, msg Message) error {
	return s.publish(ctx, DeadLetterQueueName, msg)
}

// QueuedItem represents a fetched delivery and its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Message     Message
}

// FetchN retrieves up to N messages using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, max int) ([]QueuedItem, error) {
	if max <= 0 {
		max = 1
	}
	items := make([]QueuedItem, 0, max)

	for i := 0; i < max; i++ {
		d, ok, err := s.ch.Get(StandardQueueName, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var payload Message
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			// Invalid JSON goes straight to DLQ to avoid a poison message loop
			_ = d.Ack(false)
			_ = s.publishRaw(ctx, DeadLetterQueueName, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Message: payload})
	}

	return items, nil
}

// AckMessage acknowledges a message by delivery tag.
func (s *Service) AckMessage(deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}

func (s *Service) publish(ctx context.Context, queue string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	publishing := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, publishing); err != nil {
		return exceptions.ErrQueuePublish(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err(), queue)
	}
	return nil
}
