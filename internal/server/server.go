package server

import (
	"backend-tripmate/internal/config"
	"backend-tripmate/internal/inspiration"
	"backend-tripmate/internal/itinerary"
	"backend-tripmate/internal/planner"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// TravelClient is everything the app needs from the generative backend.
type TravelClient interface {
	planner.TravelService
	inspiration.Source
}

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	Store *itinerary.Store
}

func NewServer(cfg config.Config, travel TravelClient) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		Store: itinerary.NewStore(),
	}

	registerRoutes(s, travel)
	return s
}

func registerRoutes(s *Server, travel TravelClient) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	itinerary.RegisterRoutes(s.App.Group("/itineraries"), s.Store)
	planner.RegisterRoutes(s.App.Group("/plan"), planner.NewService(travel, s.Store))
	inspiration.RegisterRoutes(s.App.Group("/inspiration"), inspiration.NewFeed(travel))
}
