package app

import (
	"fmt"
	"log"
	"strings"

	"skillbarter/internal/config"
	"skillbarter/internal/delivery/http/handler"
	"skillbarter/internal/delivery/http/middleware"
	"skillbarter/internal/delivery/http/routes"
	"skillbarter/internal/metrics"
	"skillbarter/internal/pkg/jwt"
	"skillbarter/internal/repository"
	"skillbarter/internal/usecase"
	"skillbarter/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// Bootstrap wires repositories, usecases, and the HTTP surface together.
// The returned cleanup releases the container's resources.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	metrics.Register()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewNotifier(hub)

	userRepo := repository.NewPostgresUserRepository(container.DB)
	profileRepo := repository.NewPostgresProfileRepository(container.DB)
	skillRepo := repository.NewPostgresSkillRepository(container.DB)
	exchangeRepo := repository.NewPostgresExchangeRepository(container.DB)
	messageRepo := repository.NewPostgresMessageRepository(container.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, container.Cache)
	matchUC := usecase.NewMatchUsecase(
		skillRepo, profileRepo, exchangeRepo,
		container.Cache, cfg.Redis.MatchTTL, notifier,
	)
	messageUC := usecase.NewMessageUsecase(exchangeRepo, messageRepo, notifier)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessMw.Middleware())

	registry := &routes.Registry{
		Auth:    handler.NewAuthHandler(authUC),
		Profile: handler.NewProfileHandler(profileUC),
		Skill:   handler.NewSkillHandler(skillUC),
		Match:   handler.NewMatchHandler(matchUC),
		Message: handler.NewMessageHandler(messageUC),
		Health:  handler.NewHealthHandler(container.DB),
		Events:  ws.NewHandler(hub, jwtSvc, logger),
		AuthMw:  middleware.NewAuthMiddleware(jwtSvc),
	}
	registry.Register(f)

	return &App{Fiber: f, Hub: hub}, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
