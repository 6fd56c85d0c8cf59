package planner

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"backend-tripmate/internal/genai"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/sessions", func(c *fiber.Ctx) error {
		var body struct {
			Query string `json:"query"`
			// Destination is the hand-off from the inspiration feed; it
			// seeds the lookup exactly like a typed query.
			Destination string `json:"destination"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		query := body.Query
		if query == "" {
			query = body.Destination
		}
		sess, err := svc.StartSession(c.Context(), query)
		if err != nil && sess == nil {
			return toHTTPError(err)
		}
		if err != nil {
			// Lookup failed; the session exists and reports the failure.
			return c.Status(fiber.StatusBadGateway).JSON(sess.View())
		}
		return c.Status(fiber.StatusCreated).JSON(sess.View())
	})

	r.Get("/sessions/:id", func(c *fiber.Ctx) error {
		sess, err := svc.Get(c.Params("id"))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(sess.View())
	})

	r.Post("/sessions/:id/search", func(c *fiber.Ctx) error {
		var body struct {
			Query string `json:"query"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sess, err := svc.Search(c.Context(), c.Params("id"), body.Query)
		if err != nil {
			if errors.Is(err, genai.ErrLookup) {
				return c.Status(fiber.StatusBadGateway).JSON(sess.View())
			}
			return toHTTPError(err)
		}
		return c.JSON(sess.View())
	})

	r.Post("/sessions/:id/generate", func(c *fiber.Ctx) error {
		var cfg Config
		if err := c.BodyParser(&cfg); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sess, err := svc.Generate(c.Context(), c.Params("id"), cfg)
		if err != nil {
			if errors.Is(err, genai.ErrGeneration) {
				return c.Status(fiber.StatusBadGateway).JSON(sess.View())
			}
			return toHTTPError(err)
		}
		return c.JSON(sess.View())
	})

	r.Post("/sessions/:id/discard", func(c *fiber.Ctx) error {
		sess, err := svc.Discard(c.Params("id"))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(sess.View())
	})

	r.Post("/sessions/:id/save", func(c *fiber.Ctx) error {
		it, err := svc.Save(c.Params("id"))
		if err != nil {
			return toHTTPError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(it)
	})

	r.Delete("/sessions/:id", func(c *fiber.Ctx) error {
		if !svc.Drop(c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func toHTTPError(err error) *fiber.Error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrBusy), errors.Is(err, ErrState):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, genai.ErrLookup), errors.Is(err, genai.ErrGeneration):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
