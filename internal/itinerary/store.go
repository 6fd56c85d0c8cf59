package itinerary

import (
	"log"
	"sync"
)

// Store holds itineraries in memory for the lifetime of the process, most
// recent first. Every value crossing the boundary is deep-copied, so anything
// a caller already holds stays a valid snapshot after later mutations.
//
// Mutations addressed at an unknown id are silent no-ops toward the caller
// but logged: they mean the view and the store have diverged.
type Store struct {
	mu    sync.RWMutex
	items []Itinerary
}

func NewStore() *Store {
	return &Store{}
}

// Add prepends a copy of it to the list.
func (s *Store) Add(it Itinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Itinerary{it.Clone()}, s.items...)
}

// List returns copies of all itineraries, most recent first.
func (s *Store) List() []Itinerary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Itinerary, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

// Get returns a copy of the itinerary with the given id.
func (s *Store) Get(id string) (Itinerary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return Itinerary{}, false
}

// Replace substitutes the stored record matching it.ID.
func (s *Store) Replace(it Itinerary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == it.ID {
			s.items[i] = it.Clone()
			return true
		}
	}
	log.Printf("itinerary store: replace addressed unknown id %s", it.ID)
	return false
}

// PatchDayNote replaces the note and images on one day of one itinerary,
// leaving every other day and field untouched.
func (s *Store) PatchDayNote(id string, dayIndex int, note string, images []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if dayIndex < 0 || dayIndex >= len(s.items[i].Plans) {
			log.Printf("itinerary store: day index %d out of range for id %s", dayIndex, id)
			return false
		}
		plans := make([]DayPlan, len(s.items[i].Plans))
		copy(plans, s.items[i].Plans)
		day := plans[dayIndex].Clone()
		day.Note = note
		day.Images = append([]string(nil), images...)
		plans[dayIndex] = day
		s.items[i].Plans = plans
		return true
	}
	log.Printf("itinerary store: note patch addressed unknown id %s", id)
	return false
}

// Delete removes the itinerary with the given id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	log.Printf("itinerary store: delete addressed unknown id %s", id)
	return false
}

// Len reports the number of stored itineraries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
