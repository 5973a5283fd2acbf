package queue

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"github.com/allinwom/storefront/internal/interfaces"
)

// Event types published to the storefront topic.
const (
	EventUserSignedUp        = "user.signed_up"
	EventOnboardingCompleted = "onboarding.completed"
)

type Event struct {
	Type      string `json:"type"`
	UserID    uint   `json:"user_id"`
	Subdomain string `json:"subdomain,omitempty"`
	Email     string `json:"email,omitempty"`
	At        string `json:"at"`
}

type Producer struct {
	writer *kafka.Writer
}

var _ interfaces.ProducerHandler = (*Producer)(nil)

// NewProducer returns nil when no broker is configured; publishing through a
// nil producer is a no-op so the API keeps working without Kafka.
func NewProducer(broker, topic, username, password string) *Producer {
	if broker == "" {
		return nil
	}

	transport := &kafka.Transport{}
	if username != "" {
		transport.SASL = plain.Mechanism{Username: username, Password: password}
		transport.TLS = &tls.Config{}
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			Transport:    transport,
			WriteTimeout: 10 * time.Second,
		},
	}
}

func (p *Producer) PublishMessage(key, value []byte) error {
	if p == nil || p.writer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}

// PublishEvent marshals and publishes a domain event, logging instead of
// failing the request when the broker is unreachable.
func (p *Producer) PublishEvent(ev Event) {
	ev.At = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	key := fmt.Sprintf("%s:%d", ev.Type, ev.UserID)
	if err := p.PublishMessage([]byte(key), b); err != nil {
		log.Warn().Err(err).Str("event", ev.Type).Msg("failed to publish event")
	}
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
