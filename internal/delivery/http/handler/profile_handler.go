package handler

import (
	"errors"

	"skillbarter/internal/delivery/http/dto"
	"skillbarter/internal/delivery/http/middleware"
	"skillbarter/internal/pkg/response"
	"skillbarter/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type createProfileRequest struct {
	Name           string   `json:"name"`
	Bio            string   `json:"bio"`
	Location       *string  `json:"location"`
	Availability   []string `json:"availability"`
	PortfolioLinks []string `json:"portfolio_links"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get answers null data when the caller has no profile or no identity; the
// client treats both the same way.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	p, found, err := h.uc.Get(c.Context(), middleware.CallerID(c))
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	if !found {
		return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req createProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Create(c.Context(), middleware.CallerID(c), usecase.CreateProfileInput{
		Name:           req.Name,
		Bio:            req.Bio,
		Location:       req.Location,
		Availability:   req.Availability,
		PortfolioLinks: req.PortfolioLinks,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]any{"id": id})
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrProfileExists):
		return middleware.NewAppError(fiber.StatusConflict, "Profile already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
