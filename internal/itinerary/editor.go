package itinerary

import (
	"fmt"

	"backend-tripmate/internal/shared/dateutil"
)

// Draft is an independent working copy of an itinerary. Edits never touch the
// store, so cancelling is simply dropping the draft; Commit returns the
// finished value for Store.Replace.
type Draft struct {
	it Itinerary
}

// Defaults for a freshly added activity, to be filled in by the user.
const (
	placeholderTime        = "09:00 - 10:00"
	placeholderDescription = "新活动"
)

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

func NewDraft(it Itinerary) *Draft {
	return &Draft{it: it.Clone()}
}

func (d *Draft) SetDestinationName(name string) {
	d.it.DestinationName = name
}

func (d *Draft) SetDayTitle(dayIndex int, title string) error {
	if err := d.checkDay(dayIndex); err != nil {
		return err
	}
	d.it.Plans[dayIndex].Title = title
	return nil
}

// SetStartDate moves the whole trip: every day's date and the end date are
// recomputed from the new start. The draft is untouched if newStart does not
// parse.
func (d *Draft) SetStartDate(newStart string) error {
	dates := make([]string, len(d.it.Plans))
	for i := range dates {
		date, err := dateutil.AddDays(newStart, i)
		if err != nil {
			return err
		}
		dates[i] = date
	}
	end, err := dateutil.AddDays(newStart, len(d.it.Plans)-1)
	if err != nil {
		return err
	}
	for i := range d.it.Plans {
		d.it.Plans[i].Date = dates[i]
	}
	d.it.StartDate = newStart
	d.it.EndDate = end
	return nil
}

// AddActivity appends a placeholder activity to the addressed day.
func (d *Draft) AddActivity(dayIndex int) error {
	if err := d.checkDay(dayIndex); err != nil {
		return err
	}
	d.it.Plans[dayIndex].Activities = append(d.it.Plans[dayIndex].Activities, Activity{
		Time:        placeholderTime,
		Description: placeholderDescription,
	})
	return nil
}

// SetActivity overwrites the time and description of one activity. No shape
// is enforced on the time string.
func (d *Draft) SetActivity(dayIndex, activityIndex int, timeRange, description string) error {
	if err := d.checkActivity(dayIndex, activityIndex); err != nil {
		return err
	}
	d.it.Plans[dayIndex].Activities[activityIndex] = Activity{Time: timeRange, Description: description}
	return nil
}

// RemoveActivity deletes the addressed activity. Days may end up with no
// activities at all.
func (d *Draft) RemoveActivity(dayIndex, activityIndex int) error {
	if err := d.checkActivity(dayIndex, activityIndex); err != nil {
		return err
	}
	acts := d.it.Plans[dayIndex].Activities
	d.it.Plans[dayIndex].Activities = append(acts[:activityIndex], acts[activityIndex+1:]...)
	return nil
}

// MoveActivity swaps the addressed activity with its neighbor in the given
// direction. Moving the first activity up or the last one down is a no-op.
func (d *Draft) MoveActivity(dayIndex, activityIndex int, dir MoveDirection) error {
	if err := d.checkActivity(dayIndex, activityIndex); err != nil {
		return err
	}
	var j int
	switch dir {
	case MoveUp:
		j = activityIndex - 1
	case MoveDown:
		j = activityIndex + 1
	default:
		return fmt.Errorf("unknown move direction %q", dir)
	}
	acts := d.it.Plans[dayIndex].Activities
	if j < 0 || j >= len(acts) {
		return nil
	}
	acts[activityIndex], acts[j] = acts[j], acts[activityIndex]
	return nil
}

// Commit returns the finished draft. None of the edit operations add or
// remove days, so the duration invariant holds by construction.
func (d *Draft) Commit() Itinerary {
	return d.it.Clone()
}

func (d *Draft) checkDay(dayIndex int) error {
	if dayIndex < 0 || dayIndex >= len(d.it.Plans) {
		return fmt.Errorf("day index %d out of range", dayIndex)
	}
	return nil
}

func (d *Draft) checkActivity(dayIndex, activityIndex int) error {
	if err := d.checkDay(dayIndex); err != nil {
		return err
	}
	if activityIndex < 0 || activityIndex >= len(d.it.Plans[dayIndex].Activities) {
		return fmt.Errorf("activity index %d out of range on day %d", activityIndex, dayIndex+1)
	}
	return nil
}
