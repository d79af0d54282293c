package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/felstore-tech/analytics-backend/internal/cfg"
	"github.com/felstore-tech/analytics-backend/internal/usecase"
	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/felstore-tech/analytics-backend/pkg/jitter"
	"github.com/felstore-tech/analytics-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	retryBaseBackoff = 200 * time.Millisecond
	retryMaxBackoff  = 5 * time.Second
)

// Producer публикует собранные отчёты в Kafka для внешних потребителей.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// PublishReport отправляет отчёт с ключом run id.
// Повторяет отправку с экспоненциальным отступлением и джиттером.
func (p *Producer) PublishReport(ctx context.Context, report *usecase.RetailReport) error {
	value, err := json.Marshal(report)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	message := kafka.Message{
		Key:   []byte(report.RunID),
		Value: value,
	}

	var lastErr error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(retryBaseBackoff, retryMaxBackoff, attempt-1, jitter.DefaultJitter)
			p.logger.Warnf("Kafka publish retry %d/%d in %s: %v", attempt, p.cfg.MaxRetries, backoff, lastErr)

			select {
			case <-ctx.Done():
				return e.Wrap(whereami.WhereAmI(), ctx.Err())
			case <-time.After(backoff):
			}
		}

		lastErr = p.writer.WriteMessages(ctx, message)
		if lastErr == nil {
			return nil
		}
	}

	return e.Wrap(whereami.WhereAmI(), lastErr)
}

// EnsureTopic создаёт топик отчётов, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
