package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/domain"
	"pokedex/internal/domain/models"
	"pokedex/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client(), logger.Nop())
}

func TestGetByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/pokemons/25", r.URL.Path)
		fmt.Fprint(w, `{"id":"25","name":"Pikachu","type":"electric","level":12,"stats":{"hp":35,"attack":55,"defense":40,"speed":90}}`)
	})

	got, err := client.GetByID(context.Background(), "25")
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", got.Name)
	assert.Equal(t, 90, got.Stats.Speed)
}

func TestGetByIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"pokemon with id 404 not found"}`)
	})

	_, err := client.GetByID(context.Background(), "404")
	require.True(t, domain.IsNotFound(err))
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "pokemon with id 404 not found", de.Message, "the backend message is extracted from the error body")
}

func TestListByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "chu", r.URL.Query().Get("name"))
		fmt.Fprint(w, `[{"id":"25","name":"Pikachu"},{"id":"26","name":"Raichu"}]`)
	})

	got, err := client.ListByName(context.Background(), "chu")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Raichu", got[1].Name)
}

func TestListByType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "water", r.URL.Query().Get("type"))
		fmt.Fprint(w, `[]`)
	})

	got, err := client.ListByType(context.Background(), "water")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateStripsID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var dto pokemonDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Empty(t, dto.ID, "the backend assigns the id")

		dto.ID = "7"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto)
	})

	got, err := client.Create(context.Background(), models.Pokemon{ID: "client-picked", Name: "Squirtle", Type: "water", Level: 8})
	require.NoError(t, err)
	assert.Equal(t, "7", got.ID)
}

func TestCreateConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"pokemon with name Squirtle already exists"}`)
	})

	_, err := client.Create(context.Background(), models.Pokemon{Name: "Squirtle"})
	assert.True(t, domain.IsAlreadyExists(err))
}

func TestUpdateValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"level: must be between 1 and 100"}`)
	})

	_, err := client.Update(context.Background(), models.Pokemon{ID: "1", Name: "Pikachu"})
	require.True(t, domain.IsValidation(err))
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []string{"must be between 1 and 100"}, de.Fields["level"])
}

func TestDelete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.Delete(context.Background(), "25"))
}

func TestBackendDown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"message":"maintenance window"}`)
	})

	_, err := client.GetByID(context.Background(), "1")
	assert.True(t, domain.IsUnavailable(err))
}

func TestUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, &http.Client{}, logger.Nop())
	_, err := client.GetByID(context.Background(), "1")
	assert.True(t, domain.IsUnavailable(err), "got %v", err)
}
