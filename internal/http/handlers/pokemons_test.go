package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/domain"
	"pokedex/internal/domain/models"
	"pokedex/internal/query"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPokemonService struct {
	pokemon models.Pokemon
	page    models.PagedResult[models.Pokemon]
	params  query.Params
	patch   models.PokemonPatch
	err     error
}

func (s *stubPokemonService) Get(_ context.Context, id string) (models.Pokemon, error) {
	return s.pokemon, s.err
}

func (s *stubPokemonService) List(_ context.Context, p query.Params) (models.PagedResult[models.Pokemon], error) {
	s.params = p
	return s.page, s.err
}

func (s *stubPokemonService) Create(_ context.Context, p models.Pokemon) (models.Pokemon, error) {
	if s.err != nil {
		return models.Pokemon{}, s.err
	}
	p.ID = s.pokemon.ID
	return p, nil
}

func (s *stubPokemonService) Update(_ context.Context, p models.Pokemon) (models.Pokemon, error) {
	return p, s.err
}

func (s *stubPokemonService) Patch(_ context.Context, id string, patch models.PokemonPatch) (models.Pokemon, error) {
	s.patch = patch
	return s.pokemon, s.err
}

func (s *stubPokemonService) Delete(_ context.Context, id string) error {
	return s.err
}

func pokemonRouter(svc PokemonService) *gin.Engine {
	r := gin.New()
	h := NewPokemonHandler(svc)
	r.GET("/api/v1/pokemons", h.List)
	r.GET("/api/v1/pokemons/:id", h.GetByID)
	r.POST("/api/v1/pokemons", h.Create)
	r.PUT("/api/v1/pokemons/:id", h.Update)
	r.PATCH("/api/v1/pokemons/:id", h.Patch)
	r.DELETE("/api/v1/pokemons/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPokemonGetByID(t *testing.T) {
	svc := &stubPokemonService{pokemon: models.Pokemon{ID: "25", Name: "Pikachu", Type: "electric", Level: 12}}
	w := doJSON(t, pokemonRouter(svc), http.MethodGet, "/api/v1/pokemons/25", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got pokemonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Pikachu", got.Name)
}

func TestPokemonGetByIDNotFound(t *testing.T) {
	svc := &stubPokemonService{err: domain.NotFound("pokemon", "404")}
	w := doJSON(t, pokemonRouter(svc), http.MethodGet, "/api/v1/pokemons/404", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pokemon with id 404 not found", resp.Message)
}

func TestPokemonListDefaults(t *testing.T) {
	svc := &stubPokemonService{page: models.NewPagedResult([]models.Pokemon{}, 1, 10, 0)}
	w := doJSON(t, pokemonRouter(svc), http.MethodGet, "/api/v1/pokemons", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.params.PageNumber)
	assert.Equal(t, 10, svc.params.PageSize)
	assert.Equal(t, "name", svc.params.OrderBy)
	assert.Equal(t, "asc", svc.params.OrderDirection)
	assert.Contains(t, w.Body.String(), `"items":[]`, "items is a list even when empty")
}

func TestPokemonListParams(t *testing.T) {
	svc := &stubPokemonService{}
	w := doJSON(t, pokemonRouter(svc), http.MethodGet,
		"/api/v1/pokemons?name=chu&type=electric&page=2&pageSize=5&orderBy=attack&orderDirection=desc", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, query.Params{
		Name:           "chu",
		Type:           "electric",
		PageNumber:     2,
		PageSize:       5,
		OrderBy:        "attack",
		OrderDirection: "desc",
	}, svc.params)
}

func TestPokemonListBadPaging(t *testing.T) {
	svc := &stubPokemonService{}
	for _, path := range []string{
		"/api/v1/pokemons?page=0",
		"/api/v1/pokemons?page=abc",
		"/api/v1/pokemons?pageSize=-1",
	} {
		w := doJSON(t, pokemonRouter(svc), http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestPokemonCreate(t *testing.T) {
	svc := &stubPokemonService{pokemon: models.Pokemon{ID: "7"}}
	w := doJSON(t, pokemonRouter(svc), http.MethodPost, "/api/v1/pokemons",
		`{"name":"Squirtle","type":"water","level":8,"stats":{"hp":44,"attack":48,"defense":65,"speed":43}}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/pokemons/7", w.Header().Get("Location"))
	var got pokemonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "Squirtle", got.Name)
}

func TestPokemonCreateConflict(t *testing.T) {
	svc := &stubPokemonService{err: domain.AlreadyExists("pokemon", "Squirtle")}
	w := doJSON(t, pokemonRouter(svc), http.MethodPost, "/api/v1/pokemons", `{"name":"Squirtle"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPokemonCreateValidationBody(t *testing.T) {
	svc := &stubPokemonService{err: domain.Validation(map[string][]string{
		"name": {"name is required"},
		"type": {"type is required"},
	})}
	w := doJSON(t, pokemonRouter(svc), http.MethodPost, "/api/v1/pokemons", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"name is required"}, resp.Errors["name"])
	assert.Equal(t, []string{"type is required"}, resp.Errors["type"])
}

func TestPokemonCreateMalformedJSON(t *testing.T) {
	w := doJSON(t, pokemonRouter(&stubPokemonService{}), http.MethodPost, "/api/v1/pokemons", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "body")
}

func TestPokemonPatchPassesPointers(t *testing.T) {
	svc := &stubPokemonService{pokemon: models.Pokemon{ID: "25", Name: "Pikachu", Level: 99}}
	w := doJSON(t, pokemonRouter(svc), http.MethodPatch, "/api/v1/pokemons/25", `{"level":99}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.patch.Level)
	assert.Equal(t, 99, *svc.patch.Level)
	assert.Nil(t, svc.patch.Name, "absent fields stay nil, not zero")
	assert.Nil(t, svc.patch.Stats)
}

func TestPokemonDelete(t *testing.T) {
	w := doJSON(t, pokemonRouter(&stubPokemonService{}), http.MethodDelete, "/api/v1/pokemons/25", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestPokemonBackendUnavailable(t *testing.T) {
	svc := &stubPokemonService{err: domain.Unavailable("connection refused to 10.0.0.5:8081")}
	w := doJSON(t, pokemonRouter(svc), http.MethodGet, "/api/v1/pokemons/1", "")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "backend unavailable", resp.Message, "transport detail never reaches the body")
}
