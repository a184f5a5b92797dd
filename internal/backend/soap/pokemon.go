package soap

import (
	"context"
	"strings"

	"pokedex/internal/domain"
	"pokedex/internal/domain/models"
)

// GetByID fetches a single record. A backend fault naming a missing id comes
// back as KindNotFound from the classifier.
func (c *Client) GetByID(ctx context.Context, id string) (models.Pokemon, error) {
	var resp getPokemonByIDResponse
	if err := c.call(ctx, "GetPokemonById", getPokemonByIDRequest{ID: id}, &resp); err != nil {
		return models.Pokemon{}, err
	}
	return resp.Pokemon.toModel(), nil
}

// ListByName returns every record whose name contains the filter. An empty
// filter is a full listing.
func (c *Client) ListByName(ctx context.Context, name string) ([]models.Pokemon, error) {
	var resp getPokemonByNameResponse
	if err := c.call(ctx, "GetPokemonByName", getPokemonByNameRequest{Name: name}, &resp); err != nil {
		return nil, err
	}
	out := make([]models.Pokemon, 0, len(resp.Pokemons))
	for _, dto := range resp.Pokemons {
		out = append(out, dto.toModel())
	}
	return out, nil
}

// ListByType filters a full listing locally; the legacy contract has no
// type-scoped operation.
func (c *Client) ListByType(ctx context.Context, typ string) ([]models.Pokemon, error) {
	all, err := c.ListByName(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]models.Pokemon, 0, len(all))
	for _, p := range all {
		if strings.EqualFold(p.Type, typ) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	req := createPokemonRequest{
		Name:  p.Name,
		Type:  p.Type,
		Level: p.Level,
		Stats: toStatsDTO(p.Stats),
	}
	var resp createPokemonResponse
	if err := c.call(ctx, "CreatePokemon", req, &resp); err != nil {
		return models.Pokemon{}, err
	}
	return resp.Pokemon.toModel(), nil
}

func (c *Client) Update(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	req := updatePokemonRequest{
		ID:    p.ID,
		Name:  p.Name,
		Type:  p.Type,
		Level: p.Level,
		Stats: toStatsDTO(p.Stats),
	}
	var resp updatePokemonResponse
	if err := c.call(ctx, "UpdatePokemon", req, &resp); err != nil {
		return models.Pokemon{}, err
	}
	return resp.Pokemon.toModel(), nil
}

// Delete removes a record. The backend reports an unknown id either as a
// fault or as success=false; both surface as NotFound.
func (c *Client) Delete(ctx context.Context, id string) error {
	var resp deletePokemonResponse
	if err := c.call(ctx, "DeletePokemon", deletePokemonRequest{ID: id}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return domain.NotFound("pokemon", id)
	}
	return nil
}
