// Package broadcaster drains the egress journal to Kafka. It is the durable
// counterpart to the direct kafka-go publisher: every journaled fill batch
// is delivered at least once, and acked batches are never re-sent.
package broadcaster

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"tyr/infra/journal"
)

type Broadcaster struct {
	journal  *journal.Journal
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *zap.Logger
}

func New(jnl *journal.Journal, brokers []string, topic string, interval time.Duration, log *zap.Logger) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}
	return &Broadcaster{
		journal:  jnl,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log,
	}, nil
}

// Run replays pending journal records on a ticker until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("broadcaster started", zap.String("topic", b.topic), zap.Duration("interval", b.interval))

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.replayOnce()
		}
	}
}

func (b *Broadcaster) replayOnce() {
	err := b.journal.ScanPending(func(rec *journal.Record) error {
		// SENT before the send so a crash mid-publish re-sends rather
		// than losing the record.
		if err := b.journal.MarkSent(rec.Seq); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			b.log.Warn("fill broadcast failed, will retry", zap.Uint64("seq", rec.Seq), zap.Error(err))
			return nil // retry on the next tick
		}

		return b.journal.MarkAcked(rec.Seq)
	})
	if err != nil {
		b.log.Error("journal replay failed", zap.Error(err))
		return
	}

	if n, err := b.journal.Compact(); err != nil {
		b.log.Error("journal compaction failed", zap.Error(err))
	} else if n > 0 {
		b.log.Debug("journal compacted", zap.Int("removed", n))
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
