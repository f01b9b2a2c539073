package routes

import (
	"skillbarter/internal/delivery/http/handler"
	"skillbarter/internal/delivery/http/middleware"
	"skillbarter/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Skill   *handler.SkillHandler
	Match   *handler.MatchHandler
	Message *handler.MessageHandler
	Health  *handler.HealthHandler
	Events  *ws.Handler
	AuthMw  *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.Health.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/ws", r.Events.HandleEvents)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	r.Auth.RegisterRoutes(v1.Group("/auth"))

	// The two listing reads resolve identity when present but never demand
	// it; an anonymous caller gets an empty result.
	optional := v1.Group("", r.AuthMw.Optional())
	optional.Get("/profiles/me", r.Profile.Get)
	optional.Get("/skills", r.Skill.List)

	protected := v1.Group("", r.AuthMw.Require())
	protected.Post("/profiles", r.Profile.Create)
	protected.Post("/skills", r.Skill.Create)
	protected.Get("/skills/:id/matches", r.Match.FindMatches)
	protected.Get("/exchanges", r.Match.ListExchanges)
	protected.Post("/exchanges", r.Match.InitiateExchange)
	protected.Get("/exchanges/:id/messages", r.Message.List)
	protected.Post("/exchanges/:id/messages", r.Message.Send)
}
