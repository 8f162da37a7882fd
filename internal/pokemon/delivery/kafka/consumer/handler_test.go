package consumer

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pokedex-srv/config"
	"pokedex-srv/internal/pokemon"
	"pokedex-srv/internal/pokemon/mocks"
	pkgKafka "pokedex-srv/pkg/kafka"
	"pokedex-srv/pkg/log"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	msgs chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.msgs }

func newClaim(msgs ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return &fakeClaim{msgs: ch}
}

func eventMessage(offset int64, eventType, key, value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{
		Offset: offset,
		Key:    []byte(key),
		Value:  []byte(value),
		Headers: []*sarama.RecordHeader{
			{Key: []byte(pkgKafka.HeaderEventType), Value: []byte(eventType)},
		},
	}
}

func newTestConsumer(t *testing.T, uc pokemon.UseCase) *implConsumer {
	t.Helper()
	c, err := New(Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "pokedex.catalog", GroupID: "pokedex-cache-sync"},
		UseCase:     uc,
	})
	require.NoError(t, err)
	return c.(*implConsumer)
}

func TestConsumeClaim(t *testing.T) {
	t.Run("deleted event evicts and marks", func(t *testing.T) {
		uc := mocks.NewUseCase(t)
		uc.On("EvictDeleted", mock.Anything, pokemon.EvictInput{ID: "p25"}).Return(nil).Once()
		h := &pokemonEventsHandler{consumer: newTestConsumer(t, uc)}
		session := &fakeSession{ctx: context.Background()}

		err := h.ConsumeClaim(session, newClaim(
			eventMessage(7, "pokemon.deleted", "p25", `{"event_type":"pokemon.deleted","pokemon_id":"p25","name":"Pikachu"}`),
		))
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, session.marked)
	})

	t.Run("failed eviction is left unmarked", func(t *testing.T) {
		uc := mocks.NewUseCase(t)
		uc.On("EvictDeleted", mock.Anything, pokemon.EvictInput{ID: "p1"}).Return(pokemon.ErrEvictFailed).Once()
		uc.On("EvictDeleted", mock.Anything, pokemon.EvictInput{ID: "p2"}).Return(nil).Once()
		h := &pokemonEventsHandler{consumer: newTestConsumer(t, uc)}
		session := &fakeSession{ctx: context.Background()}

		err := h.ConsumeClaim(session, newClaim(
			eventMessage(1, "pokemon.deleted", "p1", `{"pokemon_id":"p1"}`),
			eventMessage(2, "pokemon.deleted", "p2", `{"pokemon_id":"p2"}`),
		))
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, session.marked)
	})

	t.Run("other event types are skipped", func(t *testing.T) {
		uc := mocks.NewUseCase(t)
		h := &pokemonEventsHandler{consumer: newTestConsumer(t, uc)}
		session := &fakeSession{ctx: context.Background()}

		err := h.ConsumeClaim(session, newClaim(
			eventMessage(3, "pokemon.created", "p9", `{"pokemon_id":"p9"}`),
		))
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, session.marked)
		uc.AssertNotCalled(t, "EvictDeleted", mock.Anything, mock.Anything)
	})

	t.Run("malformed payload is dropped", func(t *testing.T) {
		uc := mocks.NewUseCase(t)
		h := &pokemonEventsHandler{consumer: newTestConsumer(t, uc)}
		session := &fakeSession{ctx: context.Background()}

		err := h.ConsumeClaim(session, newClaim(
			eventMessage(4, "pokemon.deleted", "p25", `{not json`),
		))
		require.NoError(t, err)
		assert.Equal(t, []int64{4}, session.marked)
	})

	t.Run("id falls back to message key", func(t *testing.T) {
		uc := mocks.NewUseCase(t)
		uc.On("EvictDeleted", mock.Anything, pokemon.EvictInput{ID: "p25"}).Return(nil).Once()
		h := &pokemonEventsHandler{consumer: newTestConsumer(t, uc)}
		session := &fakeSession{ctx: context.Background()}

		require.NoError(t, h.ConsumeClaim(session, newClaim(
			eventMessage(5, "pokemon.deleted", "p25", `{"event_type":"pokemon.deleted"}`),
		)))
		assert.Equal(t, []int64{5}, session.marked)
	})
}

func TestNew_Validation(t *testing.T) {
	uc := mocks.NewUseCase(t)
	valid := config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "pokedex.catalog"}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no logger", Config{KafkaConfig: valid, UseCase: uc}},
		{"no usecase", Config{Logger: log.NewNop(), KafkaConfig: valid}},
		{"no brokers", Config{Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Topic: "t"}, UseCase: uc}},
		{"no topic", Config{Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Brokers: valid.Brokers}, UseCase: uc}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestClose_WithoutGroup(t *testing.T) {
	c := newTestConsumer(t, mocks.NewUseCase(t))
	assert.NoError(t, c.Close())
}
