// Package trainerrpc binds the TrainerBackend contract to the trainer gRPC
// service described by proto/trainer.proto. Messages ride a JSON codec so the
// module carries no generated bindings; see codec.go.
package trainerrpc

import (
	"time"

	"pokedex/internal/domain/models"
)

// Wire shapes for the trainer service. Field names follow the proto contract.

type TrainerByIDRequest struct {
	ID string `json:"id"`
}

type TrainersByNameRequest struct {
	Name string `json:"name"`
}

type MedalWire struct {
	Region string `json:"region"`
	Type   int32  `json:"type"`
}

type TrainerWire struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Age       int32       `json:"age"`
	Birthdate time.Time   `json:"birthdate"`
	CreatedAt time.Time   `json:"created_at"`
	Medals    []MedalWire `json:"medals"`
}

type CreateTrainerRequest struct {
	Name      string      `json:"name"`
	Age       int32       `json:"age"`
	Birthdate time.Time   `json:"birthdate"`
	Medals    []MedalWire `json:"medals"`
}

type UpdateTrainerRequest struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Age       int32       `json:"age"`
	Birthdate time.Time   `json:"birthdate"`
	Medals    []MedalWire `json:"medals"`
}

type CreateTrainersResponse struct {
	SuccessCount int32         `json:"success_count"`
	Trainers     []TrainerWire `json:"trainers"`
}

type DeleteTrainerResponse struct {
	Success bool `json:"success"`
}

func (w TrainerWire) ToModel() models.Trainer {
	medals := make([]models.Medal, 0, len(w.Medals))
	for _, m := range w.Medals {
		medals = append(medals, models.Medal{Region: m.Region, Type: models.MedalType(m.Type)})
	}
	return models.Trainer{
		ID:        w.ID,
		Name:      w.Name,
		Age:       int(w.Age),
		BirthDate: w.Birthdate,
		CreatedAt: w.CreatedAt,
		Medals:    medals,
	}
}

// FromModel builds the wire shape of a trainer; used by the client for
// updates and by test servers for responses.
func FromModel(t models.Trainer) TrainerWire {
	return TrainerWire{
		ID:        t.ID,
		Name:      t.Name,
		Age:       int32(t.Age),
		Birthdate: t.BirthDate,
		CreatedAt: t.CreatedAt,
		Medals:    medalsToWire(t.Medals),
	}
}

func medalsToWire(medals []models.Medal) []MedalWire {
	out := make([]MedalWire, 0, len(medals))
	for _, m := range medals {
		out = append(out, MedalWire{Region: m.Region, Type: int32(m.Type)})
	}
	return out
}
