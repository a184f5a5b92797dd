// Package query filters, orders and pages a full backend listing in the
// facade, for backends that only offer a flat unfiltered listing operation.
package query

import (
	"sort"
	"strings"

	"pokedex/internal/domain/models"
)

// Params are the presentation-level listing parameters. Page numbers are
// 1-based; the facade boundary rejects PageNumber/PageSize < 1 before the
// engine runs.
type Params struct {
	Name           string
	Type           string
	PageNumber     int
	PageSize       int
	OrderBy        string
	OrderDirection string
}

// Pokemons applies filter, deterministic order and page slicing over a full
// result set. An unrecognized OrderBy falls back to name ascending; string
// ordering is case-insensitive and the sort is stable, so equal keys keep
// their backend order.
func Pokemons(all []models.Pokemon, p Params) models.PagedResult[models.Pokemon] {
	filtered := make([]models.Pokemon, 0, len(all))
	name := strings.ToLower(strings.TrimSpace(p.Name))
	typ := strings.TrimSpace(p.Type)
	for _, pk := range all {
		if name != "" && !strings.Contains(strings.ToLower(pk.Name), name) {
			continue
		}
		if typ != "" && !strings.EqualFold(pk.Type, typ) {
			continue
		}
		filtered = append(filtered, pk)
	}

	total := len(filtered)
	sortPokemons(filtered, p.OrderBy, p.OrderDirection)

	skip := (p.PageNumber - 1) * p.PageSize
	if skip >= total {
		return models.NewPagedResult([]models.Pokemon{}, p.PageNumber, p.PageSize, total)
	}
	end := skip + p.PageSize
	if end > total {
		end = total
	}
	page := make([]models.Pokemon, end-skip)
	copy(page, filtered[skip:end])
	return models.NewPagedResult(page, p.PageNumber, p.PageSize, total)
}

func sortPokemons(items []models.Pokemon, orderBy, direction string) {
	desc := strings.EqualFold(direction, "desc")

	var less func(a, b models.Pokemon) bool
	switch strings.ToLower(orderBy) {
	case "type":
		less = func(a, b models.Pokemon) bool {
			return strings.ToLower(a.Type) < strings.ToLower(b.Type)
		}
	case "level":
		less = func(a, b models.Pokemon) bool { return a.Level < b.Level }
	case "attack":
		less = func(a, b models.Pokemon) bool { return a.Stats.Attack < b.Stats.Attack }
	default:
		less = func(a, b models.Pokemon) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
