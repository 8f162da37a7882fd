package pokedex

import (
	"time"

	"pokedex-srv/pkg/paginator"
)

// Type is an elemental type.
type Type struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	IconURL *string `json:"iconUrl"`
}

// Ability is a passive ability.
type Ability struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Move is a move a Pokémon learns at Level.
type Move struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Accuracy    *int   `json:"accuracy"`
	DamageClass string `json:"damageClass"`
	Power       *int   `json:"power"`
	PP          *int   `json:"pp"`
	TypeID      string `json:"typeId"`
	Type        *Type  `json:"type,omitempty"`
	Level       int    `json:"level"`
}

// Pokemon is a catalog entry as served by the API.
type Pokemon struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	PokedexNumber int       `json:"pokedexNumber"`
	Types         []Type    `json:"types"`
	Abilities     []Ability `json:"abilities"`
	Moves         []Move    `json:"moves,omitempty"`
}

// PokemonPage is one page of the list endpoint.
type PokemonPage = paginator.Connection[Pokemon]

// ListParams are the query parameters of the list endpoint.
type ListParams struct {
	AfterID      *string
	Limit        int
	IncludeMoves bool
}

// User is the account returned by the auth endpoints.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
}

// Session is a successful login or registration.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

// ClientConfig configures the API client.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// Retries is the number of extra attempts for reads. Zero uses the transport default.
	Retries   int
	RetryWait time.Duration
}

// CatalogOptions configures the cached list a Catalog serves.
type CatalogOptions struct {
	PageSize     int
	IncludeMoves bool
}

type envelope struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

type sessionEnvelope struct {
	Data Session `json:"data"`
}
