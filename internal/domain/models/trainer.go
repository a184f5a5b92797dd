package models

import "time"

// MedalType enumerates the known gym medal categories.
type MedalType int

const (
	MedalUnknown MedalType = iota
	MedalBoulder
	MedalCascade
	MedalThunder
	MedalRainbow
)

// Medal is a badge earned by a trainer in a given region.
type Medal struct {
	Region string    `json:"region"`
	Type   MedalType `json:"type"`
}

// Trainer is the trainer record exposed by the trainer backend. CreatedAt is
// backend-assigned and read-only from the facade's point of view.
type Trainer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	BirthDate time.Time `json:"birthdate"`
	CreatedAt time.Time `json:"createdAt"`
	Medals    []Medal   `json:"medals"`
}
