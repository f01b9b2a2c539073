package handler

import (
	"errors"

	"skillbarter/internal/delivery/http/dto"
	"skillbarter/internal/delivery/http/middleware"
	"skillbarter/internal/pkg/response"
	"skillbarter/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

type initiateExchangeRequest struct {
	OfferSkillID   uuid.UUID `json:"offer_skill_id"`
	RequestSkillID uuid.UUID `json:"request_skill_id"`
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) FindMatches(c fiber.Ctx) error {
	skillID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.FindMatches(c.Context(), middleware.CallerID(c), skillID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	res := make([]dto.MatchResponse, 0, len(items))
	for _, m := range items {
		res = append(res, dto.NewMatchResponse(m))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MatchHandler) InitiateExchange(c fiber.Ctx) error {
	var req initiateExchangeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.InitiateExchange(c.Context(), middleware.CallerID(c), req.OfferSkillID, req.RequestSkillID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]any{"id": id})
}

func (h *MatchHandler) ListExchanges(c fiber.Ctx) error {
	items, err := h.uc.ListExchanges(c.Context(), middleware.CallerID(c))
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	res := make([]dto.ExchangeResponse, 0, len(items))
	for _, e := range items {
		res = append(res, dto.NewExchangeResponse(e))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrSkillUnavailable):
		return middleware.NewAppError(fiber.StatusConflict, "Skill no longer active", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
