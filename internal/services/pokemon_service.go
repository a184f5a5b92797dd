package services

import (
	"context"
	"fmt"
	"strings"

	"pokedex/internal/backend"
	"pokedex/internal/domain"
	"pokedex/internal/domain/models"
	"pokedex/internal/logger"
	"pokedex/internal/query"
)

// PokemonService sequences backend calls per domain operation. It enforces
// the write-path checks the backend does not guarantee end to end for the
// facade: cheap local validation, an advisory duplicate-name probe before
// writes, and an authoritative re-read after updates. Probe-then-write is not
// atomic; a racing writer is still caught by the backend's own conflict
// report, which Upgrade reclassifies.
type PokemonService struct {
	backend backend.PokemonBackend
	log     *logger.Logger
}

func NewPokemonService(b backend.PokemonBackend, log *logger.Logger) *PokemonService {
	return &PokemonService{backend: b, log: log}
}

func (s *PokemonService) Get(ctx context.Context, id string) (models.Pokemon, error) {
	return s.backend.GetByID(ctx, id)
}

// List fetches the backend's flat listing for the name filter and lets the
// query engine do the type filter, ordering and page slicing the backend
// cannot.
func (s *PokemonService) List(ctx context.Context, p query.Params) (models.PagedResult[models.Pokemon], error) {
	all, err := s.backend.ListByName(ctx, p.Name)
	if err != nil {
		return models.PagedResult[models.Pokemon]{}, err
	}
	return query.Pokemons(all, p), nil
}

func (s *PokemonService) ListByType(ctx context.Context, typ string) ([]models.Pokemon, error) {
	return s.backend.ListByType(ctx, typ)
}

func (s *PokemonService) Create(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	if err := validatePokemon(p); err != nil {
		return models.Pokemon{}, err
	}
	if err := s.checkDuplicateName(ctx, p.Name, ""); err != nil {
		return models.Pokemon{}, err
	}

	s.log.Info("creating pokemon", "name", p.Name, "type", p.Type)
	created, err := s.backend.Create(ctx, p)
	if err != nil {
		// the probe window is racy; a conflict the probe missed comes back
		// from the backend and is upgraded here
		return models.Pokemon{}, domain.Upgrade(err)
	}
	return created, nil
}

// Update replaces the whole record. The write call's echoed response is not
// trusted as final truth; the canonical post-update record is re-read.
func (s *PokemonService) Update(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	if err := validatePokemon(p); err != nil {
		return models.Pokemon{}, err
	}
	current, err := s.backend.GetByID(ctx, p.ID)
	if err != nil {
		return models.Pokemon{}, err
	}
	if !strings.EqualFold(current.Name, p.Name) {
		if err := s.checkDuplicateName(ctx, p.Name, p.ID); err != nil {
			return models.Pokemon{}, err
		}
	}

	s.log.Info("updating pokemon", "id", p.ID, "name", p.Name)
	if _, err := s.backend.Update(ctx, p); err != nil {
		return models.Pokemon{}, domain.Upgrade(err)
	}
	return s.backend.GetByID(ctx, p.ID)
}

// Patch merges the present fields into the current record and runs the full
// update path. A patch that sets nothing is rejected before any backend call.
func (s *PokemonService) Patch(ctx context.Context, id string, patch models.PokemonPatch) (models.Pokemon, error) {
	if patch.IsEmpty() {
		return models.Pokemon{}, domain.Validationf("patch", "at least one field must be set")
	}
	current, err := s.backend.GetByID(ctx, id)
	if err != nil {
		return models.Pokemon{}, err
	}

	merged := patch.ApplyTo(current)
	if err := validatePokemon(merged); err != nil {
		return models.Pokemon{}, err
	}
	if !strings.EqualFold(current.Name, merged.Name) {
		if err := s.checkDuplicateName(ctx, merged.Name, id); err != nil {
			return models.Pokemon{}, err
		}
	}

	s.log.Info("patching pokemon", "id", id)
	if _, err := s.backend.Update(ctx, merged); err != nil {
		return models.Pokemon{}, domain.Upgrade(err)
	}
	return s.backend.GetByID(ctx, id)
}

func (s *PokemonService) Delete(ctx context.Context, id string) error {
	if _, err := s.backend.GetByID(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleting pokemon", "id", id)
	return domain.Upgrade(s.backend.Delete(ctx, id))
}

// checkDuplicateName is the advisory probe: it produces a precise conflict
// error before the write round trip when another record already carries the
// name, case-insensitively. excludeID skips the record being updated.
func (s *PokemonService) checkDuplicateName(ctx context.Context, name, excludeID string) error {
	matches, err := s.backend.ListByName(ctx, name)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if strings.EqualFold(m.Name, name) && m.ID != excludeID {
			return domain.AlreadyExists("pokemon", name)
		}
	}
	return nil
}

const (
	levelMin = 1
	levelMax = 100
	statMin  = 0
	statMax  = 255
)

func validatePokemon(p models.Pokemon) error {
	fields := map[string][]string{}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = append(fields["name"], "name is required")
	}
	if strings.TrimSpace(p.Type) == "" {
		fields["type"] = append(fields["type"], "type is required")
	}
	if p.Level < levelMin || p.Level > levelMax {
		fields["level"] = append(fields["level"], fmt.Sprintf("level must be between %d and %d", levelMin, levelMax))
	}
	for name, v := range map[string]int{
		"stats.hp":      p.Stats.HP,
		"stats.attack":  p.Stats.Attack,
		"stats.defense": p.Stats.Defense,
		"stats.speed":   p.Stats.Speed,
	} {
		if v < statMin || v > statMax {
			fields[name] = append(fields[name], fmt.Sprintf("must be between %d and %d", statMin, statMax))
		}
	}
	if len(fields) > 0 {
		return domain.Validation(fields)
	}
	return nil
}
