package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	NotificationsTopic = "library.notifications"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

// EventKind tags outbound notification payloads.
type EventKind string

const (
	EventKindFineAdded EventKind = "FINE_ADDED"
	EventKindOverdue   EventKind = "OVERDUE"
)

// EventNotification is the payload produced to the notifications topic.
// Delivery transport (email, push) is owned by the consumer side.
type EventNotification struct {
	Kind           EventKind `json:"kind"`
	UserName       string    `json:"userName"`
	ReservationUID string    `json:"reservationUid,omitempty"`
	TitleID        int       `json:"titleId,omitempty"`
	AmountCents    int64     `json:"amountCents,omitempty"`
	OverdueDays    int       `json:"overdueDays,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
