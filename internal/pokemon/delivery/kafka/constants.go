package kafka

// Event types carried in the envelope of the catalog events topic.
const (
	EventTypePokemonDeleted = "pokemon.deleted"
)
