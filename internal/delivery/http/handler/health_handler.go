package handler

import (
	"context"
	"time"

	"skillbarter/internal/database"
	"skillbarter/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	if h.db == nil || h.db.Ping(ctx) != nil {
		status = "degraded"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"database": status})
}
