package kafka

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_Validation(t *testing.T) {
	_, err := NewProducer(Config{Topic: "pokedex.events"})
	assert.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewProducer(Config{Brokers: []string{"localhost:9092"}})
	assert.ErrorIs(t, err, ErrNoTopic)
}

func TestSaramaConfig(t *testing.T) {
	sc := saramaConfig(Config{})
	assert.Equal(t, DefaultClientID, sc.ClientID)
	assert.Equal(t, sarama.WaitForLocal, sc.Producer.RequiredAcks)
	assert.False(t, sc.Producer.Idempotent)

	sc = saramaConfig(Config{ClientID: "worker", Idempotent: true})
	assert.Equal(t, "worker", sc.ClientID)
	assert.Equal(t, sarama.WaitForAll, sc.Producer.RequiredAcks)
	assert.True(t, sc.Producer.Idempotent)
	assert.Equal(t, 1, sc.Net.MaxOpenRequests)
	require.NoError(t, sc.Validate())
}

func TestProducer_Publish(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	sp := mocks.NewSyncProducer(t, cfg)
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "pokedex.events", msg.Topic)
		key, _ := msg.Key.Encode()
		assert.Equal(t, "p-1", string(key))
		require.Len(t, msg.Headers, 1)
		assert.Equal(t, HeaderEventType, string(msg.Headers[0].Key))
		assert.Equal(t, "pokemon.deleted", string(msg.Headers[0].Value))
		return nil
	})

	p := &producerImpl{producer: sp, topic: "pokedex.events"}
	err := p.Publish(context.Background(), Message{
		Key:     []byte("p-1"),
		Value:   []byte(`{"id":"p-1"}`),
		Headers: map[string]string{HeaderEventType: "pokemon.deleted"},
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestProducer_PublishFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := &producerImpl{producer: sp, topic: "pokedex.events"}
	err := p.Publish(context.Background(), Message{Key: []byte("k"), Value: []byte("v")})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestProducer_PublishCanceled(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	p := &producerImpl{producer: sp, topic: "pokedex.events"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, Message{}), context.Canceled)
	require.NoError(t, p.Close())
}

func TestNewConsumerGroup_Validation(t *testing.T) {
	_, err := NewConsumerGroup(ConsumerConfig{GroupID: "pokedex-cache-sync"})
	assert.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewConsumerGroup(ConsumerConfig{Brokers: []string{"localhost:9092"}})
	assert.ErrorIs(t, err, ErrNoGroupID)
}

func TestConsumerSaramaConfig(t *testing.T) {
	sc := consumerSaramaConfig(ConsumerConfig{GroupID: "pokedex-cache-sync"})
	assert.Equal(t, DefaultClientID, sc.ClientID)
	assert.Equal(t, sarama.OffsetNewest, sc.Consumer.Offsets.Initial)
	assert.True(t, sc.Consumer.Return.Errors)
	require.NoError(t, sc.Validate())
}

func TestHeader(t *testing.T) {
	msg := &sarama.ConsumerMessage{Headers: []*sarama.RecordHeader{
		{Key: []byte("trace"), Value: []byte("t-1")},
		{Key: []byte(HeaderEventType), Value: []byte("pokemon.deleted")},
	}}
	assert.Equal(t, "pokemon.deleted", Header(msg, HeaderEventType))
	assert.Equal(t, "", Header(msg, "missing"))
}
