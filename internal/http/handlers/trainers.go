package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pokedex/internal/backend"
	"pokedex/internal/domain/models"
)

// TrainerService is the orchestration surface the trainer handler needs.
type TrainerService interface {
	Get(ctx context.Context, id string) (models.Trainer, error)
	ListByName(ctx context.Context, name string) ([]models.Trainer, error)
	Update(ctx context.Context, t models.Trainer) (models.Trainer, error)
	Delete(ctx context.Context, id string) error
	BulkCreate(ctx context.Context, trainers []models.Trainer) (backend.BulkResult, error)
}

type TrainerHandler struct {
	svc TrainerService
}

func NewTrainerHandler(svc TrainerService) *TrainerHandler {
	return &TrainerHandler{svc: svc}
}

type medalPayload struct {
	Region string `json:"region"`
	Type   int    `json:"type"`
}

type trainerPayload struct {
	Name      string         `json:"name"`
	Age       int            `json:"age"`
	BirthDate time.Time      `json:"birthdate"`
	Medals    []medalPayload `json:"medals"`
}

type trainerResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Age       int            `json:"age"`
	BirthDate time.Time      `json:"birthdate"`
	CreatedAt time.Time      `json:"createdAt"`
	Medals    []medalPayload `json:"medals"`
}

type bulkCreateResponse struct {
	SuccessCount int               `json:"successCount"`
	Trainers     []trainerResponse `json:"trainers"`
}

func (p trainerPayload) toModel(id string) models.Trainer {
	medals := make([]models.Medal, 0, len(p.Medals))
	for _, m := range p.Medals {
		medals = append(medals, models.Medal{Region: m.Region, Type: models.MedalType(m.Type)})
	}
	return models.Trainer{ID: id, Name: p.Name, Age: p.Age, BirthDate: p.BirthDate, Medals: medals}
}

func toTrainerResponse(t models.Trainer) trainerResponse {
	medals := make([]medalPayload, 0, len(t.Medals))
	for _, m := range t.Medals {
		medals = append(medals, medalPayload{Region: m.Region, Type: int(m.Type)})
	}
	return trainerResponse{
		ID:        t.ID,
		Name:      t.Name,
		Age:       t.Age,
		BirthDate: t.BirthDate,
		CreatedAt: t.CreatedAt,
		Medals:    medals,
	}
}

// GET /api/v1/trainers/:id
func (h *TrainerHandler) GetByID(c *gin.Context) {
	t, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTrainerResponse(t))
}

// GET /api/v1/trainers?name=
func (h *TrainerHandler) List(c *gin.Context) {
	trainers, err := h.svc.ListByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]trainerResponse, 0, len(trainers))
	for _, t := range trainers {
		out = append(out, toTrainerResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/v1/trainers
// Bulk create: order preserved, partial success is reported rather than
// failed.
func (h *TrainerHandler) BulkCreate(c *gin.Context) {
	var payloads []trainerPayload
	if !BindJSONOrError(c, &payloads) {
		return
	}
	trainers := make([]models.Trainer, 0, len(payloads))
	for _, p := range payloads {
		trainers = append(trainers, p.toModel(""))
	}

	res, err := h.svc.BulkCreate(c.Request.Context(), trainers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := bulkCreateResponse{SuccessCount: res.SuccessCount, Trainers: make([]trainerResponse, 0, len(res.Created))}
	for _, t := range res.Created {
		out.Trainers = append(out.Trainers, toTrainerResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/v1/trainers/:id
func (h *TrainerHandler) Update(c *gin.Context) {
	var payload trainerPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), payload.toModel(c.Param("id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTrainerResponse(updated))
}

// DELETE /api/v1/trainers/:id
func (h *TrainerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
