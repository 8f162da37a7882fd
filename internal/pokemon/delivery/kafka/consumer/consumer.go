package consumer

import (
	"context"
)

// ConsumePokemonEvents starts consuming the catalog events topic
func (c *implConsumer) ConsumePokemonEvents(ctx context.Context) error {
	group, err := c.createConsumerGroup()
	if err != nil {
		return err
	}
	c.pokemonEventsGroup = group

	handler := &pokemonEventsHandler{consumer: c}
	topics := []string{c.kafkaConfig.Topic}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.Consume(ctx, topics, handler); err != nil {
					c.l.Errorf(ctx, "pokemon.delivery.kafka.consumer.ConsumePokemonEvents: Consume failed: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "pokemon.delivery.kafka.consumer.ConsumePokemonEvents: consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s as group %s", c.kafkaConfig.Topic, c.kafkaConfig.GroupID)
	return nil
}
