package kafka

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

var ErrNoGroupID = errors.New("kafka: consumer group id is required")

// ConsumerConfig configures a consumer group.
type ConsumerConfig struct {
	Brokers  []string
	GroupID  string
	ClientID string
}

// NewConsumerGroup joins cfg.GroupID. New groups start at the newest offset.
func NewConsumerGroup(cfg ConsumerConfig) (sarama.ConsumerGroup, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.GroupID == "" {
		return nil, ErrNoGroupID
	}

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, consumerSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", cfg.GroupID, err)
	}
	return group, nil
}

func consumerSaramaConfig(cfg ConsumerConfig) *sarama.Config {
	sc := sarama.NewConfig()
	sc.Version = KafkaVersion
	sc.ClientID = cfg.ClientID
	if sc.ClientID == "" {
		sc.ClientID = DefaultClientID
	}
	sc.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	sc.Consumer.Return.Errors = true
	return sc
}

// Header returns the value of header key on msg, or "".
func Header(msg *sarama.ConsumerMessage, key string) string {
	for _, h := range msg.Headers {
		if h != nil && string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}
