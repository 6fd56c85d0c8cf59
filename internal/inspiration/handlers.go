package inspiration

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"backend-tripmate/internal/genai"
	"backend-tripmate/internal/shared/imageurl"
)

type entryView struct {
	genai.DestinationDetails
	ImageURL string `json:"imageUrl"`
}

func RegisterRoutes(r fiber.Router, feed *Feed) {
	r.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(toViews(feed.Entries()))
	})

	r.Post("/more", func(c *fiber.Ctx) error {
		added, err := feed.More(c.Context())
		if err != nil {
			if errors.Is(err, ErrBusy) {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(toViews(added))
	})

	r.Post("/reset", func(c *fiber.Ctx) error {
		feed.Reset()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func toViews(entries []genai.DestinationDetails) []entryView {
	out := make([]entryView, len(entries))
	for i, d := range entries {
		out[i] = entryView{DestinationDetails: d, ImageURL: imageurl.Inspiration(d.ImageKeyword)}
	}
	return out
}
