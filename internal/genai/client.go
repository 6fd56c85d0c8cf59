package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"backend-tripmate/internal/itinerary"
)

// Failure classes surfaced by the client. The planner decides which state to
// fall back to; handlers map them to HTTP statuses.
var (
	ErrLookup      = errors.New("destination lookup failed")
	ErrGeneration  = errors.New("plan generation failed")
	ErrInspiration = errors.New("inspiration fetch failed")
)

const (
	DefaultModel    = "gemini-2.5-flash"
	DefaultBaseURL  = "https://generativelanguage.googleapis.com"
	defaultLanguage = "Simplified Chinese (简体中文)"

	// The prompt names at most this many destinations to exclude.
	excludeWindow = 20
)

type Style string

const (
	StyleVacation Style = "vacation"
	StyleLeisure  Style = "leisure"
	StyleIntense  Style = "intense"
)

// TimeContext carries the precise-mode arrival and departure timestamps,
// formatted "2006-01-02 15:04", forwarded verbatim into the prompt.
type TimeContext struct {
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
}

// DestinationDetails is the structured answer for a destination lookup or one
// inspiration entry. Rating is only present on direct lookups.
type DestinationDetails struct {
	Name            string   `json:"name"`
	Country         string   `json:"country"`
	Description     string   `json:"description"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	ImageKeyword    string   `json:"imageKeyword"`
	Rating          *float64 `json:"rating,omitempty"`
}

// Client calls the generateContent endpoint with a response schema, so every
// reply is immediately parseable JSON. A shared limiter paces all three
// operations.
type Client struct {
	baseURL  string
	apiKey   string
	model    string
	language string
	http     *http.Client
	limiter  *rate.Limiter
}

func NewClient(baseURL, apiKey, model, language string, rps float64, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if language == "" {
		language = defaultLanguage
	}
	if rps <= 0 {
		rps = 1
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		model:    model,
		language: language,
		http:     &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r generateResponse) text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

// LookupDestination resolves a free-text query into destination details.
func (c *Client) LookupDestination(ctx context.Context, query string) (DestinationDetails, error) {
	var out DestinationDetails
	if err := c.generate(ctx, c.lookupPrompt(query), destinationSchema, &out); err != nil {
		return DestinationDetails{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	if out.Name == "" {
		return DestinationDetails{}, fmt.Errorf("%w: empty destination in response", ErrLookup)
	}
	return out, nil
}

// GeneratePlan produces a day-by-day candidate plan. The returned days carry
// no dates, notes or images; those are attached when the plan is saved.
func (c *Client) GeneratePlan(ctx context.Context, destination string, days int, tc *TimeContext, style Style) ([]itinerary.DayPlan, error) {
	var out []itinerary.DayPlan
	if err := c.generate(ctx, c.planPrompt(destination, days, tc, style), itinerarySchema, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty plan in response", ErrGeneration)
	}
	return out, nil
}

// ListInspiration fetches a batch of suggested destinations, excluding the
// most recently shown names.
func (c *Client) ListInspiration(ctx context.Context, exclude []string) ([]DestinationDetails, error) {
	if len(exclude) > excludeWindow {
		exclude = exclude[len(exclude)-excludeWindow:]
	}
	var out []DestinationDetails
	if err := c.generate(ctx, c.inspirationPrompt(exclude), inspirationSchema, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInspiration, err)
	}
	return out, nil
}

func (c *Client) generate(ctx context.Context, prompt string, respSchema *schema, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   respSchema,
		},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model endpoint returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return err
	}
	text := decoded.text()
	if text == "" {
		return errors.New("no data returned")
	}
	return json.Unmarshal([]byte(text), out)
}
