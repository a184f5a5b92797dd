// Package backend defines the resource backend contracts the orchestration
// layer depends on. One concrete adapter exists per wire transport; all of
// them return domain models and domain errors only.
package backend

import (
	"context"

	"pokedex/internal/domain/models"
)

// PokemonBackend is the pokemon resource contract. ListByName with an empty
// filter is a full listing; the backend cannot paginate, so callers that need
// pages run the result through the query engine.
type PokemonBackend interface {
	GetByID(ctx context.Context, id string) (models.Pokemon, error)
	ListByName(ctx context.Context, name string) ([]models.Pokemon, error)
	ListByType(ctx context.Context, typ string) ([]models.Pokemon, error)
	Create(ctx context.Context, p models.Pokemon) (models.Pokemon, error)
	Update(ctx context.Context, p models.Pokemon) (models.Pokemon, error)
	Delete(ctx context.Context, id string) error
}

// TrainerStream is a lazy, finite, non-restartable sequence of trainers.
// Recv returns io.EOF when the backend closes the stream. Close is idempotent
// and releases the underlying transport resources; callers must close the
// stream even when abandoning it early.
type TrainerStream interface {
	Recv() (models.Trainer, error)
	Close() error
}

// BulkResult reports the outcome of a bulk create. Created preserves the
// caller-supplied order of the items that succeeded; a partial failure is not
// an error at this level.
type BulkResult struct {
	SuccessCount int              `json:"successCount"`
	Created      []models.Trainer `json:"trainers"`
}

// TrainerBackend is the trainer resource contract over the streaming RPC
// backend.
type TrainerBackend interface {
	GetByID(ctx context.Context, id string) (models.Trainer, error)
	StreamByName(ctx context.Context, name string) (TrainerStream, error)
	Update(ctx context.Context, t models.Trainer) error
	Delete(ctx context.Context, id string) error
	BulkCreate(ctx context.Context, trainers []models.Trainer) (BulkResult, error)
}
