package model

// Pokemon is a catalog entry. PokedexNumber is the unique ordering key used as
// the pagination cursor; ID is the stable identifier.
type Pokemon struct {
	ID            string
	Name          string
	PokedexNumber int
	Types         []Type
	Abilities     []Ability
	Moves         []PokemonMove
}

// Type is an elemental type such as Electric or Water.
type Type struct {
	ID      string
	Name    string
	IconURL *string
}

// Ability is a passive ability a Pokémon can have.
type Ability struct {
	ID   string
	Name string
}

// Move is a learnable move.
type Move struct {
	ID          string
	Name        string
	Accuracy    *int
	DamageClass string
	Power       *int
	PP          *int
	TypeID      string
	Type        *Type
}

// PokemonMove links a Pokémon to a move it learns at Level.
type PokemonMove struct {
	PokemonID string
	MoveID    string
	Level     int
	Move      Move
}
