package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"tyr/domain/orderbook"
)

// FillEvent is the wire form of one match published to the fills topic.
type FillEvent struct {
	Seq       uint64  `json:"seq"`
	Aggressor string  `json:"aggressor"`
	Side      string  `json:"side"`
	Price     float64 `json:"price"`
	Quantity  uint32  `json:"quantity"`
	Timestamp int64   `json:"timestamp"`
}

// Producer publishes fill events directly to Kafka. It is the low-latency
// egress path; the journal-backed broadcaster is the durable one.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// PublishFills writes one message per match, keyed by the aggressor id so
// all fills of one order land in one partition.
func (p *Producer) PublishFills(ctx context.Context, seq uint64, side orderbook.Side, matches []orderbook.MatchResult) error {
	if len(matches) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(matches))
	for _, m := range matches {
		ev := FillEvent{
			Seq:       seq,
			Aggressor: m.CounterpartyID.String(),
			Side:      side.String(),
			Price:     m.Price,
			Quantity:  m.Quantity,
			Timestamp: time.Now().UnixNano(),
		}
		value, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(ev.Aggressor),
			Value: value,
		})
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
