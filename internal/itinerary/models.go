package itinerary

import "fmt"

// Activity is one scheduled action within a day. Time is a free-text range
// like "09:00 - 11:00"; it is only split on "-" for display, never parsed.
type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// DayPlan is one calendar day of an itinerary. Day is 1-based and contiguous
// within its parent; Date derives from the parent's start date.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	Note       string     `json:"note,omitempty"`
	Images     []string   `json:"images,omitempty"`
}

// Itinerary is the saved planning unit. EndDate is always computed from
// StartDate and DurationDays, never edited independently.
type Itinerary struct {
	ID              string    `json:"id"`
	DestinationName string    `json:"destinationName"`
	StartDate       string    `json:"startDate,omitempty"`
	EndDate         string    `json:"endDate,omitempty"`
	DurationDays    int       `json:"durationDays"`
	CoverImage      string    `json:"coverImage"`
	Plans           []DayPlan `json:"plans"`
}

// Clone returns a deep copy of the day plan.
func (p DayPlan) Clone() DayPlan {
	c := p
	if p.Activities != nil {
		c.Activities = append([]Activity(nil), p.Activities...)
	}
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	return c
}

// Clone returns a deep copy of the itinerary.
func (it Itinerary) Clone() Itinerary {
	c := it
	if it.Plans != nil {
		c.Plans = make([]DayPlan, len(it.Plans))
		for i, p := range it.Plans {
			c.Plans[i] = p.Clone()
		}
	}
	return c
}

// Validate checks the duration invariant: DurationDays equals the number of
// plans and the day numbers run 1..N without gaps.
func (it Itinerary) Validate() error {
	if it.DurationDays < 1 {
		return fmt.Errorf("durationDays must be at least 1, got %d", it.DurationDays)
	}
	if it.DurationDays != len(it.Plans) {
		return fmt.Errorf("durationDays %d does not match %d plans", it.DurationDays, len(it.Plans))
	}
	for i, p := range it.Plans {
		if p.Day != i+1 {
			return fmt.Errorf("plan at position %d has day %d, want %d", i, p.Day, i+1)
		}
	}
	return nil
}
