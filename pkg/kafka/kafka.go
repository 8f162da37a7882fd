package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

var (
	ErrNoBrokers = errors.New("kafka: at least one broker is required")
	ErrNoTopic   = errors.New("kafka: topic is required")
)

func validateConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return ErrNoBrokers
	}
	if cfg.Topic == "" {
		return ErrNoTopic
	}
	return nil
}

func saramaConfig(cfg Config) *sarama.Config {
	sc := sarama.NewConfig()
	sc.Version = KafkaVersion
	sc.ClientID = cfg.ClientID
	if sc.ClientID == "" {
		sc.ClientID = DefaultClientID
	}
	sc.Producer.Return.Successes = true
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Retry.Max = ProducerRetryMax
	sc.Producer.Timeout = ProducerTimeout
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	if cfg.Idempotent {
		sc.Producer.Idempotent = true
		sc.Producer.RequiredAcks = sarama.WaitForAll
		sc.Net.MaxOpenRequests = 1
	}
	return sc
}

// Publish sends msg and waits for the broker ack. Records with the same key
// land on the same partition, so per-key order is kept.
func (p *producerImpl) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pm := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(msg.Key),
		Value: sarama.ByteEncoder(msg.Value),
	}
	for k, v := range msg.Headers {
		pm.Headers = append(pm.Headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	if _, _, err := p.producer.SendMessage(pm); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the producer.
func (p *producerImpl) Close() error {
	return p.producer.Close()
}
