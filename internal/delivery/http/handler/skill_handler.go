package handler

import (
	"errors"

	"skillbarter/internal/delivery/http/dto"
	"skillbarter/internal/delivery/http/middleware"
	"skillbarter/internal/domain/skill"
	"skillbarter/internal/pkg/response"
	"skillbarter/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type createSkillRequest struct {
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), middleware.CallerID(c))
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, s := range items {
		res = append(res, dto.NewSkillResponse(s))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Create(c.Context(), middleware.CallerID(c), usecase.CreateSkillInput{
		Kind:        skill.Kind(req.Kind),
		Category:    req.Category,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]any{"id": id})
}

func mapSkillUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
