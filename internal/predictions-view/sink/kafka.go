package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	sharedkafka "github.com/radieske/football-predictions-view/internal/shared/kafka"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaSink publica events.SnapshotLoaded com o load id como chave
type KafkaSink struct {
	Writer messageWriter
	Topic  string
}

func NewKafkaSink(w messageWriter, topic string) *KafkaSink {
	return &KafkaSink{Writer: w, Topic: topic}
}

func (s *KafkaSink) Name() string { return "kafka" }

func (s *KafkaSink) Publish(ctx context.Context, out view.Outcome) error {
	if !out.Applied {
		return nil
	}
	b, err := json.Marshal(event(out))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := sharedkafka.WriteJSON(ctx, s.Writer, out.LoadID, b); err != nil {
		return fmt.Errorf("kafka write %s: %w", s.Topic, err)
	}
	return nil
}
