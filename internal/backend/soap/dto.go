package soap

import (
	"encoding/xml"

	"pokedex/internal/domain/models"
)

// Wire DTOs mirroring the PokemonService operation contracts. Requests carry
// the service namespace; responses are matched by local name only.

type statsDTO struct {
	HP      int `xml:"hp"`
	Attack  int `xml:"attack"`
	Defense int `xml:"defense"`
	Speed   int `xml:"speed"`
}

type pokemonDTO struct {
	ID    string   `xml:"id"`
	Name  string   `xml:"name"`
	Type  string   `xml:"type"`
	Level int      `xml:"level"`
	Stats statsDTO `xml:"stats"`
}

type getPokemonByIDRequest struct {
	XMLName xml.Name `xml:"http://pokemon-api/pokemon-service GetPokemonById"`
	ID      string   `xml:"id"`
}

type getPokemonByIDResponse struct {
	XMLName xml.Name   `xml:"GetPokemonByIdResponse"`
	Pokemon pokemonDTO `xml:"pokemon"`
}

type getPokemonByNameRequest struct {
	XMLName xml.Name `xml:"http://pokemon-api/pokemon-service GetPokemonByName"`
	Name    string   `xml:"name"`
}

type getPokemonByNameResponse struct {
	XMLName  xml.Name     `xml:"GetPokemonByNameResponse"`
	Pokemons []pokemonDTO `xml:"pokemons>pokemon"`
}

type createPokemonRequest struct {
	XMLName xml.Name `xml:"http://pokemon-api/pokemon-service CreatePokemon"`
	Name    string   `xml:"name"`
	Type    string   `xml:"type"`
	Level   int      `xml:"level"`
	Stats   statsDTO `xml:"stats"`
}

type createPokemonResponse struct {
	XMLName xml.Name   `xml:"CreatePokemonResponse"`
	Pokemon pokemonDTO `xml:"pokemon"`
}

type updatePokemonRequest struct {
	XMLName xml.Name `xml:"http://pokemon-api/pokemon-service UpdatePokemon"`
	ID      string   `xml:"id"`
	Name    string   `xml:"name"`
	Type    string   `xml:"type"`
	Level   int      `xml:"level"`
	Stats   statsDTO `xml:"stats"`
}

type updatePokemonResponse struct {
	XMLName xml.Name   `xml:"UpdatePokemonResponse"`
	Pokemon pokemonDTO `xml:"pokemon"`
}

type deletePokemonRequest struct {
	XMLName xml.Name `xml:"http://pokemon-api/pokemon-service DeletePokemon"`
	ID      string   `xml:"id"`
}

type deletePokemonResponse struct {
	XMLName xml.Name `xml:"DeletePokemonResponse"`
	Success bool     `xml:"success"`
}

func (d pokemonDTO) toModel() models.Pokemon {
	return models.Pokemon{
		ID:    d.ID,
		Name:  d.Name,
		Type:  d.Type,
		Level: d.Level,
		Stats: models.Stats{
			HP:      d.Stats.HP,
			Attack:  d.Stats.Attack,
			Defense: d.Stats.Defense,
			Speed:   d.Stats.Speed,
		},
	}
}

func toStatsDTO(s models.Stats) statsDTO {
	return statsDTO{HP: s.HP, Attack: s.Attack, Defense: s.Defense, Speed: s.Speed}
}
