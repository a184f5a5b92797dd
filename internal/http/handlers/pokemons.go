package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pokedex/internal/domain"
	"pokedex/internal/domain/models"
	"pokedex/internal/query"
)

// PokemonService is the orchestration surface the pokemon handler needs.
type PokemonService interface {
	Get(ctx context.Context, id string) (models.Pokemon, error)
	List(ctx context.Context, p query.Params) (models.PagedResult[models.Pokemon], error)
	Create(ctx context.Context, p models.Pokemon) (models.Pokemon, error)
	Update(ctx context.Context, p models.Pokemon) (models.Pokemon, error)
	Patch(ctx context.Context, id string, patch models.PokemonPatch) (models.Pokemon, error)
	Delete(ctx context.Context, id string) error
}

type PokemonHandler struct {
	svc PokemonService
}

func NewPokemonHandler(svc PokemonService) *PokemonHandler {
	return &PokemonHandler{svc: svc}
}

type statsPayload struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

type pokemonPayload struct {
	Name  string       `json:"name"`
	Type  string       `json:"type"`
	Level int          `json:"level"`
	Stats statsPayload `json:"stats"`
}

type pokemonResponse struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  string       `json:"type"`
	Level int          `json:"level"`
	Stats statsPayload `json:"stats"`
}

func (p pokemonPayload) toModel(id string) models.Pokemon {
	return models.Pokemon{
		ID:    id,
		Name:  p.Name,
		Type:  p.Type,
		Level: p.Level,
		Stats: models.Stats(p.Stats),
	}
}

func toPokemonResponse(p models.Pokemon) pokemonResponse {
	return pokemonResponse{
		ID:    p.ID,
		Name:  p.Name,
		Type:  p.Type,
		Level: p.Level,
		Stats: statsPayload(p.Stats),
	}
}

// GET /api/v1/pokemons/:id
func (h *PokemonHandler) GetByID(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPokemonResponse(p))
}

// GET /api/v1/pokemons?name=&type=&page=&pageSize=&orderBy=&orderDirection=
func (h *PokemonHandler) List(c *gin.Context) {
	params, err := listParams(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	page, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	items := make([]pokemonResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toPokemonResponse(p))
	}
	c.JSON(http.StatusOK, models.PagedResult[pokemonResponse]{
		Items:        items,
		PageNumber:   page.PageNumber,
		PageSize:     page.PageSize,
		TotalRecords: page.TotalRecords,
		TotalPages:   page.TotalPages,
		HasNext:      page.HasNext,
		HasPrevious:  page.HasPrevious,
	})
}

func listParams(c *gin.Context) (query.Params, error) {
	params := query.Params{
		Name:           c.Query("name"),
		Type:           c.Query("type"),
		PageNumber:     1,
		PageSize:       10,
		OrderBy:        c.DefaultQuery("orderBy", "name"),
		OrderDirection: c.DefaultQuery("orderDirection", "asc"),
	}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return query.Params{}, domain.Validationf("page", "page must be a positive integer")
		}
		params.PageNumber = n
	}
	if raw := c.Query("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return query.Params{}, domain.Validationf("pageSize", "pageSize must be a positive integer")
		}
		params.PageSize = n
	}
	return params, nil
}

// POST /api/v1/pokemons
func (h *PokemonHandler) Create(c *gin.Context) {
	var payload pokemonPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), payload.toModel(""))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Location", "/api/v1/pokemons/"+created.ID)
	c.JSON(http.StatusCreated, toPokemonResponse(created))
}

// PUT /api/v1/pokemons/:id
func (h *PokemonHandler) Update(c *gin.Context) {
	var payload pokemonPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), payload.toModel(c.Param("id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPokemonResponse(updated))
}

// PATCH /api/v1/pokemons/:id
func (h *PokemonHandler) Patch(c *gin.Context) {
	var patch models.PokemonPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	updated, err := h.svc.Patch(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPokemonResponse(updated))
}

// DELETE /api/v1/pokemons/:id
func (h *PokemonHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
