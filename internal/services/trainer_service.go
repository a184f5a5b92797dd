package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"pokedex/internal/backend"
	"pokedex/internal/domain"
	"pokedex/internal/domain/models"
	"pokedex/internal/logger"
)

// TrainerService orchestrates the streaming trainer backend. Reads are
// pass-throughs; writes re-check the invariants the probe can catch early and
// re-read the canonical record after an update.
type TrainerService struct {
	backend backend.TrainerBackend
	log     *logger.Logger
}

func NewTrainerService(b backend.TrainerBackend, log *logger.Logger) *TrainerService {
	return &TrainerService{backend: b, log: log}
}

func (s *TrainerService) Get(ctx context.Context, id string) (models.Trainer, error) {
	return s.backend.GetByID(ctx, id)
}

// ListByName drains the backend stream into a slice for the REST response.
// The stream is always closed, releasing the transport even when consumption
// stops early on error or cancellation.
func (s *TrainerService) ListByName(ctx context.Context, name string) ([]models.Trainer, error) {
	stream, err := s.backend.StreamByName(ctx, name)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	trainers := []models.Trainer{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, domain.ClassifyTransport(err)
		}
		t, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return trainers, nil
		}
		if err != nil {
			return nil, err
		}
		trainers = append(trainers, t)
	}
}

// StreamByName exposes the lazy sequence directly for consumers that want to
// apply their own backpressure. The caller owns the stream and must close it.
func (s *TrainerService) StreamByName(ctx context.Context, name string) (backend.TrainerStream, error) {
	return s.backend.StreamByName(ctx, name)
}

func (s *TrainerService) Update(ctx context.Context, t models.Trainer) (models.Trainer, error) {
	if err := validateTrainer(t); err != nil {
		return models.Trainer{}, err
	}
	current, err := s.backend.GetByID(ctx, t.ID)
	if err != nil {
		return models.Trainer{}, err
	}
	if !strings.EqualFold(current.Name, t.Name) {
		if err := s.checkDuplicateName(ctx, t.Name, t.ID); err != nil {
			return models.Trainer{}, err
		}
	}

	s.log.Info("updating trainer", "id", t.ID, "name", t.Name)
	if err := s.backend.Update(ctx, t); err != nil {
		return models.Trainer{}, domain.Upgrade(err)
	}
	return s.backend.GetByID(ctx, t.ID)
}

func (s *TrainerService) Delete(ctx context.Context, id string) error {
	if _, err := s.backend.GetByID(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleting trainer", "id", id)
	return domain.Upgrade(s.backend.Delete(ctx, id))
}

// BulkCreate validates locally, then streams the batch in caller order. The
// batch is not atomic: the backend reports which items made it, and a partial
// outcome is a success at this level.
func (s *TrainerService) BulkCreate(ctx context.Context, trainers []models.Trainer) (backend.BulkResult, error) {
	if len(trainers) == 0 {
		return backend.BulkResult{}, domain.Validationf("trainers", "at least one trainer is required")
	}
	for i, t := range trainers {
		if strings.TrimSpace(t.Name) == "" {
			return backend.BulkResult{}, domain.Validationf("trainers", "trainer %d: name is required", i)
		}
	}

	s.log.Info("bulk creating trainers", "count", len(trainers))
	res, err := s.backend.BulkCreate(ctx, trainers)
	if err != nil {
		return backend.BulkResult{}, domain.Upgrade(err)
	}
	return res, nil
}

func (s *TrainerService) checkDuplicateName(ctx context.Context, name, excludeID string) error {
	matches, err := s.ListByName(ctx, name)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if strings.EqualFold(m.Name, name) && m.ID != excludeID {
			return domain.AlreadyExists("trainer", name)
		}
	}
	return nil
}

func validateTrainer(t models.Trainer) error {
	fields := map[string][]string{}
	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = append(fields["name"], "name is required")
	}
	if t.Age <= 0 {
		fields["age"] = append(fields["age"], "age must be positive")
	}
	if len(fields) > 0 {
		return domain.Validation(fields)
	}
	return nil
}
