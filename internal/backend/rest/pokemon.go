// Package rest binds the PokemonBackend contract to the plain JSON backend.
// Same domain contract as the soap adapter, different transport; selected via
// POKEMON_BACKEND=rest.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"pokedex/internal/domain"
	"pokedex/internal/domain/models"
	"pokedex/internal/logger"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

func NewClient(baseURL string, httpClient *http.Client, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient, log: log}
}

type statsDTO struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

type pokemonDTO struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	Level int      `json:"level"`
	Stats statsDTO `json:"stats"`
}

type errorDTO struct {
	Message string `json:"message"`
}

func (d pokemonDTO) toModel() models.Pokemon {
	return models.Pokemon{
		ID:    d.ID,
		Name:  d.Name,
		Type:  d.Type,
		Level: d.Level,
		Stats: models.Stats(d.Stats),
	}
}

func toDTO(p models.Pokemon) pokemonDTO {
	return pokemonDTO{
		ID:    p.ID,
		Name:  p.Name,
		Type:  p.Type,
		Level: p.Level,
		Stats: statsDTO(p.Stats),
	}
}

// do issues one JSON request and decodes a 2xx body into out. Non-2xx
// statuses are classified into the taxonomy with the backend's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: marshal %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("rest: build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("rest call failed", "method", method, "path", path, "error", err)
		return domain.ClassifyTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ClassifyTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(raw)
		var decoded errorDTO
		if json.Unmarshal(raw, &decoded) == nil && decoded.Message != "" {
			msg = decoded.Message
		}
		return domain.ClassifyHTTP(resp.StatusCode, msg)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.Unknown(fmt.Sprintf("rest: malformed response for %s %s: %v", method, path, err))
	}
	return nil
}

func (c *Client) GetByID(ctx context.Context, id string) (models.Pokemon, error) {
	var dto pokemonDTO
	if err := c.do(ctx, http.MethodGet, "/api/v1/pokemons/"+url.PathEscape(id), nil, &dto); err != nil {
		return models.Pokemon{}, err
	}
	return dto.toModel(), nil
}

func (c *Client) ListByName(ctx context.Context, name string) ([]models.Pokemon, error) {
	path := "/api/v1/pokemons"
	if name != "" {
		path += "?name=" + url.QueryEscape(name)
	}
	return c.list(ctx, path)
}

func (c *Client) ListByType(ctx context.Context, typ string) ([]models.Pokemon, error) {
	return c.list(ctx, "/api/v1/pokemons?type="+url.QueryEscape(typ))
}

func (c *Client) list(ctx context.Context, path string) ([]models.Pokemon, error) {
	var dtos []pokemonDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]models.Pokemon, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toModel())
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	dto := toDTO(p)
	dto.ID = "" // backend assigns
	var created pokemonDTO
	if err := c.do(ctx, http.MethodPost, "/api/v1/pokemons", dto, &created); err != nil {
		return models.Pokemon{}, err
	}
	return created.toModel(), nil
}

func (c *Client) Update(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	var updated pokemonDTO
	if err := c.do(ctx, http.MethodPut, "/api/v1/pokemons/"+url.PathEscape(p.ID), toDTO(p), &updated); err != nil {
		return models.Pokemon{}, err
	}
	return updated.toModel(), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/pokemons/"+url.PathEscape(id), nil, nil)
}
