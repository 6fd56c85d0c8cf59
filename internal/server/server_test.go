package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend-tripmate/internal/config"
	"backend-tripmate/internal/genai"
	"backend-tripmate/internal/itinerary"
	"backend-tripmate/internal/planner"
)

type fakeTravel struct{}

func (fakeTravel) LookupDestination(_ context.Context, query string) (genai.DestinationDetails, error) {
	return genai.DestinationDetails{Name: query, Country: "法国", ImageKeyword: "Paris"}, nil
}

func (fakeTravel) GeneratePlan(_ context.Context, _ string, days int, _ *genai.TimeContext, _ genai.Style) ([]itinerary.DayPlan, error) {
	plans := make([]itinerary.DayPlan, days)
	for i := range plans {
		plans[i] = itinerary.DayPlan{
			Day:        i + 1,
			Title:      "城市漫步",
			Activities: []itinerary.Activity{{Time: "09:00 - 12:00", Description: "参观博物馆"}},
			Images:     []string{"museum"},
		}
	}
	return plans, nil
}

func (fakeTravel) ListInspiration(_ context.Context, _ []string) ([]genai.DestinationDetails, error) {
	return []genai.DestinationDetails{{Name: "京都", Country: "日本", ImageKeyword: "Kyoto"}}, nil
}

func TestHealthRoute(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, fakeTravel{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestRoutesAreWired(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, fakeTravel{})

	body, _ := json.Marshal(map[string]string{"query": "巴黎"})
	req := httptest.NewRequest(http.MethodPost, "/plan/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("plan session: %v status %d", err, resp.StatusCode)
	}
	var v planner.View
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	body, _ = json.Marshal(planner.Config{Mode: planner.ModeSimple, Days: 2, StartDate: "2024-05-01"})
	req = httptest.NewRequest(http.MethodPost, "/plan/sessions/"+v.ID+"/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if resp, err = s.App.Test(req); err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("generate: %v status %d", err, resp.StatusCode)
	}
	req = httptest.NewRequest(http.MethodPost, "/plan/sessions/"+v.ID+"/save", nil)
	if resp, err = s.App.Test(req); err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("save: %v status %d", err, resp.StatusCode)
	}

	// The saved plan is visible through the itinerary routes.
	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, "/itineraries/", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("itineraries: %v status %d", err, resp.StatusCode)
	}
	var list []itinerary.Itinerary
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode itineraries: %v", err)
	}
	if len(list) != 1 || list[0].DestinationName != "巴黎" {
		t.Fatalf("unexpected itineraries: %+v", list)
	}

	resp, err = s.App.Test(httptest.NewRequest(http.MethodPost, "/inspiration/more", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("inspiration: %v status %d", err, resp.StatusCode)
	}
}
