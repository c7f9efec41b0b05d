package kafka

import (
	"context"
	"fmt"
	"time"

	"courier-network/internal/pkg/config"
	"courier-network/pkg/logger"

	"github.com/IBM/sarama"
)

const (
	producerRetryMax     = 1
	producerRetryBackoff = 100 * time.Millisecond
	producerNetTimeout   = 3 * time.Second
	producerFlushTimeout = 5 * time.Second
)

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerRetryMax
	cfg.Producer.Retry.Backoff = producerRetryBackoff
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Timeout = producerFlushTimeout
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Net.DialTimeout = producerNetTimeout
	cfg.Net.ReadTimeout = producerNetTimeout
	cfg.Net.WriteTimeout = producerNetTimeout

	return cfg, nil
}

// NewAsyncProducer отправка не блокирует вызывающего, результаты приходят
// в Successes() и Errors(), их обязан вычитывать владелец продюсера.
func NewAsyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.AsyncProducer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create async producer: %w", err)
	}

	return producer, nil
}
