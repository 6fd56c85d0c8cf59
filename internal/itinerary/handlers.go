package itinerary

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"backend-tripmate/internal/shared/dateutil"
)

// EditCommand is one editor operation applied to a draft. Day and Activity
// are zero-based indexes.
type EditCommand struct {
	Op          string `json:"op"`
	Name        string `json:"name,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	Day         int    `json:"day,omitempty"`
	Title       string `json:"title,omitempty"`
	Activity    int    `json:"activity,omitempty"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
	Direction   string `json:"direction,omitempty"`
}

type listItem struct {
	Itinerary
	DateRange string `json:"dateRange,omitempty"`
}

type detail struct {
	Itinerary
	DateRange string   `json:"dateRange,omitempty"`
	DayDates  []string `json:"dayDates,omitempty"`
}

func RegisterRoutes(r fiber.Router, store *Store) {
	r.Get("/", func(c *fiber.Ctx) error {
		items := store.List()
		out := make([]listItem, len(items))
		for i, it := range items {
			out[i] = listItem{Itinerary: it, DateRange: dateutil.FormatRange(it.StartDate, it.EndDate)}
		}
		return c.JSON(out)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		it, ok := store.Get(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "itinerary not found")
		}
		dayDates := make([]string, len(it.Plans))
		for i, p := range it.Plans {
			dayDates[i] = dateutil.FormatLong(p.Date)
		}
		return c.JSON(detail{
			Itinerary: it,
			DateRange: dateutil.FormatRange(it.StartDate, it.EndDate),
			DayDates:  dayDates,
		})
	})

	r.Put("/:id", func(c *fiber.Ctx) error {
		var req Itinerary
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.ID = c.Params("id")
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !store.Replace(req) {
			return fiber.NewError(fiber.StatusNotFound, "itinerary not found")
		}
		it, _ := store.Get(req.ID)
		return c.JSON(it)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		if !store.Delete(c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "itinerary not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Patch("/:id/days/:index/note", func(c *fiber.Ctx) error {
		dayIndex, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "day index must be an integer")
		}
		var body struct {
			Note   string   `json:"note"`
			Images []string `json:"images"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !store.PatchDayNote(c.Params("id"), dayIndex, body.Note, body.Images) {
			return fiber.NewError(fiber.StatusNotFound, "itinerary or day not found")
		}
		it, _ := store.Get(c.Params("id"))
		return c.JSON(it)
	})

	r.Post("/:id/edits", func(c *fiber.Ctx) error {
		var commands []EditCommand
		if err := c.BodyParser(&commands); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		it, ok := store.Get(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "itinerary not found")
		}
		draft := NewDraft(it)
		for _, cmd := range commands {
			if err := applyCommand(draft, cmd); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
		edited := draft.Commit()
		if err := edited.Validate(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		store.Replace(edited)
		return c.JSON(edited)
	})
}

func applyCommand(draft *Draft, cmd EditCommand) error {
	switch cmd.Op {
	case "set_destination_name":
		draft.SetDestinationName(cmd.Name)
		return nil
	case "set_start_date":
		return draft.SetStartDate(cmd.StartDate)
	case "set_day_title":
		return draft.SetDayTitle(cmd.Day, cmd.Title)
	case "add_activity":
		return draft.AddActivity(cmd.Day)
	case "set_activity":
		return draft.SetActivity(cmd.Day, cmd.Activity, cmd.Time, cmd.Description)
	case "remove_activity":
		return draft.RemoveActivity(cmd.Day, cmd.Activity)
	case "move_activity":
		return draft.MoveActivity(cmd.Day, cmd.Activity, MoveDirection(cmd.Direction))
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown edit op "+cmd.Op)
	}
}
