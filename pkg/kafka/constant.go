package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout bounds a single produce request.
	ProducerTimeout = 10 * time.Second
	// ProducerRetryMax is how many times a failed produce is retried by sarama.
	ProducerRetryMax = 3
	// DefaultClientID identifies this service to the brokers.
	DefaultClientID = "pokedex-srv"
	// HeaderEventType carries the event type so consumers can route without decoding.
	HeaderEventType = "event_type"
)

// KafkaVersion is the protocol version negotiated with the brokers.
var KafkaVersion = sarama.V2_6_0_0
