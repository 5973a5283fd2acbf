package queue

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/allinwom/storefront/internal/interfaces"
)

// EventLogger is the default consumer handler: it records every storefront
// event so a deployment without a downstream processor still has an audit
// trail in the logs.
type EventLogger struct{}

func (EventLogger) HandleMessage(message []byte) error {
	var ev Event
	if err := json.Unmarshal(message, &ev); err != nil {
		return err
	}
	log.Info().
		Str("type", ev.Type).
		Uint("user_id", ev.UserID).
		Str("subdomain", ev.Subdomain).
		Msg("storefront event")
	return nil
}

type KafkaConsumer struct {
	Reader  *kafka.Reader
	Handler interfaces.ConsumerHandler
}

func NewKafkaConsumer(broker, topic, groupID string, handler interfaces.ConsumerHandler) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})

	return &KafkaConsumer{
		Reader:  reader,
		Handler: handler,
	}
}

func (kc *KafkaConsumer) Listen(ctx context.Context) {
	for {
		msg, err := kc.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Msg("error reading message")
			continue
		}

		if err := kc.Handler.HandleMessage(msg.Value); err != nil {
			log.Error().Err(err).Msg("error handling message")
		}
	}
}
