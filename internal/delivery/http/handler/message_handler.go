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

type MessageHandler struct {
	uc usecase.MessageUsecase
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) List(c fiber.Ctx) error {
	exchangeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.List(c.Context(), middleware.CallerID(c), exchangeID)
	if err != nil {
		return mapMessageUsecaseError(err)
	}

	res := make([]dto.MessageResponse, 0, len(items))
	for _, m := range items {
		res = append(res, dto.NewMessageResponse(m))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	exchangeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Send(c.Context(), middleware.CallerID(c), exchangeID, req.Content)
	if err != nil {
		return mapMessageUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]any{"id": id})
}

func mapMessageUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrExchangeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Exchange not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
