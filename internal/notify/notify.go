package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/circuit_breaker"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/kafka"
)

const (
	queueSize    = 256
	sendAttempts = 3
	retryDelay   = 5 * time.Second
)

// Dispatcher drains an outbound event queue into the notifications topic.
// Delivery is best effort and decoupled from the callers: a full queue or a
// dead broker drops the event with a log line, never an error to the producer
// side of the queue.
type Dispatcher struct {
	log      *zap.Logger
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	events   chan kafka.EventNotification
}

func NewDispatcher(producer sarama.SyncProducer, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		log:      log.Named("notify"),
		producer: producer,
		cb:       circuit_breaker.NewCircuitBreaker(20, 30*time.Second, 0.5, 3),
		events:   make(chan kafka.EventNotification, queueSize),
	}
}

func (d *Dispatcher) Notify(event kafka.EventNotification) {
	select {
	case d.events <- event:
	default:
		d.log.Warn("notification queue full, dropping event",
			zap.String("kind", string(event.Kind)), zap.String("user", event.UserName))
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.events:
			d.deliver(ctx, event)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event kafka.EventNotification) {
	data, err := json.Marshal(event)
	if err != nil {
		d.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.NotificationsTopic,
		Key:   sarama.StringEncoder(event.UserName),
		Value: sarama.ByteEncoder(data),
	}

	for attempt := 1; attempt <= sendAttempts; attempt++ {
		err = d.cb.Call(func() error {
			_, _, err := d.producer.SendMessage(msg)
			return err
		})
		if err == nil {
			return
		}
		if attempt < sendAttempts {
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
		}
	}
	d.log.Error("notification dropped after retries",
		zap.String("kind", string(event.Kind)), zap.String("user", event.UserName), zap.Error(err))
}
