package http

import (
	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon"
	"pokedex-srv/pkg/paginator"
)

type listReq struct {
	AfterID      *int
	Limit        int
	IncludeMoves bool
}

func (r listReq) toInput() pokemon.ListInput {
	return pokemon.ListInput{
		AfterID:      r.AfterID,
		Limit:        r.Limit,
		IncludeMoves: r.IncludeMoves,
	}
}

type idReq struct {
	ID string
}

func (r idReq) toDetailInput() pokemon.DetailInput {
	return pokemon.DetailInput{ID: r.ID}
}

func (r idReq) toMovesInput() pokemon.ListMovesInput {
	return pokemon.ListMovesInput{PokemonID: r.ID}
}

func (r idReq) toDeleteInput() pokemon.DeleteInput {
	return pokemon.DeleteInput{ID: r.ID}
}

type typeResp struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	IconURL *string `json:"iconUrl"`
}

type abilityResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type moveResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Accuracy    *int      `json:"accuracy"`
	DamageClass string    `json:"damageClass"`
	Power       *int      `json:"power"`
	PP          *int      `json:"pp"`
	TypeID      string    `json:"typeId"`
	Type        *typeResp `json:"type,omitempty"`
	Level       int       `json:"level"`
}

type pokemonResp struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	PokedexNumber int           `json:"pokedexNumber"`
	Types         []typeResp    `json:"types"`
	Abilities     []abilityResp `json:"abilities"`
	Moves         []moveResp    `json:"moves,omitempty"`
}

type listResp = paginator.Connection[pokemonResp]

func (h *handler) newListResp(o pokemon.ListOutput) listResp {
	nodes := make([]pokemonResp, len(o.Nodes))
	for i, p := range o.Nodes {
		nodes[i] = h.newPokemonResp(p)
	}
	return listResp{Nodes: nodes, PageInfo: o.PageInfo}
}

func (h *handler) newPokemonResp(p model.Pokemon) pokemonResp {
	resp := pokemonResp{
		ID:            p.ID,
		Name:          p.Name,
		PokedexNumber: p.PokedexNumber,
		Types:         make([]typeResp, len(p.Types)),
		Abilities:     make([]abilityResp, len(p.Abilities)),
	}
	for i, t := range p.Types {
		resp.Types[i] = newTypeResp(t)
	}
	for i, a := range p.Abilities {
		resp.Abilities[i] = abilityResp{ID: a.ID, Name: a.Name}
	}
	if p.Moves != nil {
		resp.Moves = h.newMovesResp(p.Moves)
	}
	return resp
}

func (h *handler) newMovesResp(moves []model.PokemonMove) []moveResp {
	out := make([]moveResp, len(moves))
	for i, pm := range moves {
		out[i] = moveResp{
			ID:          pm.Move.ID,
			Name:        pm.Move.Name,
			Accuracy:    pm.Move.Accuracy,
			DamageClass: pm.Move.DamageClass,
			Power:       pm.Move.Power,
			PP:          pm.Move.PP,
			TypeID:      pm.Move.TypeID,
			Level:       pm.Level,
		}
		if pm.Move.Type != nil {
			t := newTypeResp(*pm.Move.Type)
			out[i].Type = &t
		}
	}
	return out
}

func newTypeResp(t model.Type) typeResp {
	return typeResp{ID: t.ID, Name: t.Name, IconURL: t.IconURL}
}
