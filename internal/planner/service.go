package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"backend-tripmate/internal/genai"
	"backend-tripmate/internal/itinerary"
	"backend-tripmate/internal/shared/dateutil"
	"backend-tripmate/internal/shared/imageurl"
)

// TravelService is the slice of the generative client the planner consumes.
type TravelService interface {
	LookupDestination(ctx context.Context, query string) (genai.DestinationDetails, error)
	GeneratePlan(ctx context.Context, destination string, days int, tc *genai.TimeContext, style genai.Style) ([]itinerary.DayPlan, error)
}

var (
	ErrNotFound   = errors.New("session not found")
	ErrValidation = errors.New("invalid trip configuration")
	ErrBusy       = errors.New("a request is already in flight for this session")
	ErrState      = errors.New("operation not allowed in the current session state")
)

type State string

const (
	StateIdle       State = "idle"
	StateSearching  State = "searching"
	StateFound      State = "found"
	StateGenerating State = "generating"
	StatePlanReady  State = "plan_ready"
	StateSaved      State = "saved"
)

type Mode string

const (
	ModeSimple  Mode = "simple"
	ModePrecise Mode = "precise"
)

// Config carries the trip parameters for one generation attempt. Simple mode
// uses StartDate and Days; precise mode derives the duration from Arrival and
// Departure ("2006-01-02T15:04").
type Config struct {
	Mode      Mode        `json:"mode"`
	StartDate string      `json:"startDate,omitempty"`
	Days      int         `json:"days,omitempty"`
	Arrival   string      `json:"arrival,omitempty"`
	Departure string      `json:"departure,omitempty"`
	Style     genai.Style `json:"style,omitempty"`
}

// resolved is a Config after validation: effective day count, effective start
// date and the prompt time context.
type resolved struct {
	days           int
	effectiveStart string
	timeCtx        *genai.TimeContext
	style          genai.Style
}

// Session is one search-and-plan workflow instance. Only one external call
// may be in flight per session; concurrent requests are rejected with
// ErrBusy. The epoch counter discards results of calls superseded by a
// discard while they were in flight.
type Session struct {
	ID string

	mu          sync.Mutex
	state       State
	epoch       int
	inFlight    bool
	query       string
	destination *genai.DestinationDetails
	candidate   []itinerary.DayPlan
	res         *resolved
	lastErr     string
	savedID     string
}

// View is a race-free snapshot of a session for rendering.
type View struct {
	ID               string                    `json:"id"`
	State            State                     `json:"state"`
	Query            string                    `json:"query,omitempty"`
	Destination      *destinationView          `json:"destination,omitempty"`
	Candidate        []itinerary.DayPlan       `json:"candidate,omitempty"`
	LastError        string                    `json:"lastError,omitempty"`
	SavedItineraryID string                    `json:"savedItineraryId,omitempty"`
}

type destinationView struct {
	genai.DestinationDetails
	ImageURL string `json:"imageUrl"`
}

func (sess *Session) View() View {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked()
}

func (sess *Session) viewLocked() View {
	v := View{
		ID:               sess.ID,
		State:            sess.state,
		Query:            sess.query,
		LastError:        sess.lastErr,
		SavedItineraryID: sess.savedID,
	}
	if sess.destination != nil {
		d := *sess.destination
		v.Destination = &destinationView{DestinationDetails: d, ImageURL: imageurl.Scenery(d.ImageKeyword)}
	}
	if sess.candidate != nil {
		v.Candidate = make([]itinerary.DayPlan, len(sess.candidate))
		for i, p := range sess.candidate {
			v.Candidate[i] = p.Clone()
		}
	}
	return v
}

// Service owns the planning sessions and materializes saved plans into the
// itinerary store.
type Service struct {
	travel TravelService
	store  *itinerary.Store

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewService(travel TravelService, store *itinerary.Store) *Service {
	return &Service{
		travel:   travel,
		store:    store,
		sessions: map[string]*Session{},
	}
}

// StartSession creates a session and runs the initial lookup. The query may
// also be a destination name handed over from the inspiration feed.
func (s *Service) StartSession(ctx context.Context, query string) (*Session, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrValidation)
	}
	sess := &Session{ID: uuid.NewString(), state: StateIdle}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, s.search(ctx, sess, query)
}

// Search resubmits a lookup on an existing session, e.g. to retry after a
// failure or to pick a different destination before generating.
func (s *Service) Search(ctx context.Context, id, query string) (*Session, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return sess, fmt.Errorf("%w: query must not be empty", ErrValidation)
	}
	return sess, s.search(ctx, sess, query)
}

func (s *Service) search(ctx context.Context, sess *Session, query string) error {
	sess.mu.Lock()
	if sess.inFlight {
		sess.mu.Unlock()
		return ErrBusy
	}
	sess.inFlight = true
	sess.state = StateSearching
	sess.query = query
	epoch := sess.epoch
	sess.mu.Unlock()

	dest, err := s.travel.LookupDestination(ctx, query)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.epoch != epoch {
		// Superseded while in flight; drop the late result. The busy flag
		// now belongs to whatever superseded this call.
		return nil
	}
	sess.inFlight = false
	if err != nil {
		sess.state = StateIdle
		sess.lastErr = err.Error()
		return err
	}
	sess.lastErr = ""
	sess.destination = &dest
	sess.candidate = nil
	sess.res = nil
	sess.state = StateFound
	return nil
}

// Generate runs one plan generation with the given configuration. It may be
// called repeatedly before saving; each success replaces the candidate plan.
func (s *Service) Generate(ctx context.Context, id string, cfg Config) (*Session, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	// Validation failures surface before any transition happens.
	res, err := resolveConfig(cfg)
	if err != nil {
		return sess, err
	}

	sess.mu.Lock()
	if sess.inFlight {
		sess.mu.Unlock()
		return sess, ErrBusy
	}
	if sess.state != StateFound && sess.state != StatePlanReady {
		sess.mu.Unlock()
		return sess, fmt.Errorf("%w: no destination selected", ErrState)
	}
	destination := sess.destination.Name
	sess.inFlight = true
	sess.state = StateGenerating
	epoch := sess.epoch
	sess.mu.Unlock()

	plans, genErr := s.travel.GeneratePlan(ctx, destination, res.days, res.timeCtx, res.style)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.epoch != epoch {
		return sess, nil
	}
	sess.inFlight = false
	if genErr != nil {
		// Back to configuring; the user may retry with the same or
		// different parameters.
		sess.state = StateFound
		sess.lastErr = genErr.Error()
		return sess, genErr
	}
	// The prompt asks for sequential days; renumber defensively so the
	// duration invariant of a saved itinerary never depends on model output.
	for i := range plans {
		plans[i].Day = i + 1
	}
	res.days = len(plans)
	sess.lastErr = ""
	sess.candidate = plans
	sess.res = &res
	sess.state = StatePlanReady
	return sess, nil
}

// Discard drops the candidate plan and returns to configuring. Any in-flight
// call is invalidated: its late result will be ignored.
func (s *Service) Discard(id string) (*Session, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.epoch++
	sess.inFlight = false
	sess.candidate = nil
	sess.res = nil
	sess.lastErr = ""
	if sess.destination != nil {
		sess.state = StateFound
	} else {
		sess.state = StateIdle
	}
	return sess, nil
}

// Save materializes the candidate plan into a new itinerary and adds it to
// the store. Dates are attached here: day N gets effectiveStart+(N-1).
func (s *Service) Save(id string) (itinerary.Itinerary, error) {
	sess, err := s.session(id)
	if err != nil {
		return itinerary.Itinerary{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != StatePlanReady || sess.candidate == nil || sess.res == nil {
		return itinerary.Itinerary{}, fmt.Errorf("%w: no plan ready to save", ErrState)
	}

	res := sess.res
	plans := make([]itinerary.DayPlan, len(sess.candidate))
	for i, p := range sess.candidate {
		cp := p.Clone()
		date, err := dateutil.AddDays(res.effectiveStart, cp.Day-1)
		if err != nil {
			return itinerary.Itinerary{}, err
		}
		cp.Date = date
		plans[i] = cp
	}
	endDate, err := dateutil.AddDays(res.effectiveStart, res.days-1)
	if err != nil {
		return itinerary.Itinerary{}, err
	}

	it := itinerary.Itinerary{
		ID:              uuid.NewString(),
		DestinationName: sess.destination.Name,
		StartDate:       res.effectiveStart,
		EndDate:         endDate,
		DurationDays:    res.days,
		CoverImage:      imageurl.Cover(sess.destination.ImageKeyword),
		Plans:           plans,
	}
	if err := it.Validate(); err != nil {
		return itinerary.Itinerary{}, err
	}
	s.store.Add(it)
	sess.state = StateSaved
	sess.savedID = it.ID
	return it, nil
}

// Drop removes a session from the registry. Responses of calls still in
// flight land on the orphaned session and are never observed.
func (s *Service) Drop(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Service) Get(id string) (*Session, error) {
	return s.session(id)
}

func (s *Service) session(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func resolveConfig(cfg Config) (resolved, error) {
	style := cfg.Style
	if style == "" {
		style = genai.StyleLeisure
	}

	switch cfg.Mode {
	case ModeSimple, "":
		if cfg.Days < 1 {
			return resolved{}, fmt.Errorf("%w: days must be at least 1", ErrValidation)
		}
		start := cfg.StartDate
		if start == "" {
			start = time.Now().Format(dateutil.DateLayout)
		} else if _, err := dateutil.AddDays(start, 0); err != nil {
			return resolved{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return resolved{days: cfg.Days, effectiveStart: start, style: style}, nil

	case ModePrecise:
		if cfg.Arrival == "" || cfg.Departure == "" {
			return resolved{}, fmt.Errorf("%w: arrival and departure are required", ErrValidation)
		}
		arr, err := dateutil.ParseDateTime(cfg.Arrival)
		if err != nil {
			return resolved{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		dep, err := dateutil.ParseDateTime(cfg.Departure)
		if err != nil {
			return resolved{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if !dep.After(arr) {
			return resolved{}, fmt.Errorf("%w: departure must be after arrival", ErrValidation)
		}
		return resolved{
			days:           dateutil.DurationDays(arr, dep),
			effectiveStart: arr.Format(dateutil.DateLayout),
			timeCtx: &genai.TimeContext{
				Arrival:   strings.Replace(cfg.Arrival, "T", " ", 1),
				Departure: strings.Replace(cfg.Departure, "T", " ", 1),
			},
			style: style,
		}, nil

	default:
		return resolved{}, fmt.Errorf("%w: unknown mode %q", ErrValidation, cfg.Mode)
	}
}
