package inspiration

import (
	"context"
	"errors"
	"log"
	"sync"

	"backend-tripmate/internal/genai"
)

// Source is the slice of the generative client the feed consumes.
type Source interface {
	ListInspiration(ctx context.Context, exclude []string) ([]genai.DestinationDetails, error)
}

var ErrBusy = errors.New("an inspiration fetch is already in flight")

const (
	// The prompt names at most this many already-shown destinations.
	excludeWindow = 20
	fallbackSize  = 4
)

// Feed is a paginated stream of suggested destinations, deduplicated by exact
// name. At most one fetch runs at a time; a failed fetch degrades silently to
// the built-in list so the feed is never empty.
type Feed struct {
	source Source

	mu       sync.Mutex
	inFlight bool
	entries  []genai.DestinationDetails
	seen     map[string]struct{}
}

func NewFeed(source Source) *Feed {
	return &Feed{source: source, seen: map[string]struct{}{}}
}

// More fetches the next batch and appends the entries not already shown, in
// batch order. It returns the appended entries.
func (f *Feed) More(ctx context.Context) ([]genai.DestinationDetails, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	f.inFlight = true
	exclude := f.recentNamesLocked()
	f.mu.Unlock()

	batch, err := f.source.ListInspiration(ctx, exclude)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if err != nil {
		log.Printf("inspiration: fetch failed, serving fallback: %v", err)
		batch = genai.Fallback(fallbackSize)
	}

	var added []genai.DestinationDetails
	for _, d := range batch {
		if _, dup := f.seen[d.Name]; dup {
			continue
		}
		f.seen[d.Name] = struct{}{}
		f.entries = append(f.entries, d)
		added = append(added, d)
	}
	return added, nil
}

// Entries returns a copy of everything shown so far, in display order.
func (f *Feed) Entries() []genai.DestinationDetails {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]genai.DestinationDetails(nil), f.entries...)
}

// Reset clears the feed so the next fetch starts over.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = nil
	f.seen = map[string]struct{}{}
}

func (f *Feed) recentNamesLocked() []string {
	start := 0
	if len(f.entries) > excludeWindow {
		start = len(f.entries) - excludeWindow
	}
	names := make([]string, 0, len(f.entries)-start)
	for _, d := range f.entries[start:] {
		names = append(names, d.Name)
	}
	return names
}
