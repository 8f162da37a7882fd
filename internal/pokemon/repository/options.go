package repository

// Include selects which relations are loaded with a Pokémon.
type Include struct {
	Types     bool
	Abilities bool
	Moves     bool
}

// ListInclude is the relation shape of list pages.
func ListInclude(includeMoves bool) Include {
	return Include{Types: true, Abilities: true, Moves: includeMoves}
}

// DetailInclude is the relation shape of the detail view.
func DetailInclude() Include {
	return Include{Types: true, Abilities: true, Moves: true}
}

type ListOptions struct {
	// AfterPokedexNumber restricts rows to pokedex_number > value when set.
	AfterPokedexNumber *int
	Limit              int
	Include            Include
}
