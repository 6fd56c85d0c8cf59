package inspiration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"backend-tripmate/internal/genai"
)

type fakeSource struct {
	mu      sync.Mutex
	batches [][]genai.DestinationDetails
	err     error
	exclude []string
	block   chan struct{}
}

func (s *fakeSource) ListInspiration(ctx context.Context, exclude []string) ([]genai.DestinationDetails, error) {
	s.mu.Lock()
	s.exclude = exclude
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if len(s.batches) == 0 {
		return nil, nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}

func places(names ...string) []genai.DestinationDetails {
	out := make([]genai.DestinationDetails, len(names))
	for i, n := range names {
		out[i] = genai.DestinationDetails{Name: n, Country: "测试", ImageKeyword: n}
	}
	return out
}

func names(entries []genai.DestinationDetails) []string {
	out := make([]string, len(entries))
	for i, d := range entries {
		out[i] = d.Name
	}
	return out
}

func TestFeedDeduplicatesAcrossBatches(t *testing.T) {
	src := &fakeSource{batches: [][]genai.DestinationDetails{
		places("巴黎", "京都"),
		places("京都", "冰岛", "冰岛"),
	}}
	feed := NewFeed(src)

	added, err := feed.More(context.Background())
	if err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if got := names(added); len(got) != 2 || got[0] != "巴黎" || got[1] != "京都" {
		t.Fatalf("first batch entries: %v", got)
	}

	added, err = feed.More(context.Background())
	if err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if got := names(added); len(got) != 1 || got[0] != "冰岛" {
		t.Fatalf("duplicates survived: %v", got)
	}

	if got := names(feed.Entries()); len(got) != 3 || got[0] != "巴黎" || got[1] != "京都" || got[2] != "冰岛" {
		t.Fatalf("feed order wrong: %v", got)
	}
}

func TestFeedPassesRecentNamesAsExclusions(t *testing.T) {
	src := &fakeSource{batches: [][]genai.DestinationDetails{
		places("巴黎", "京都"),
		places("冰岛"),
	}}
	feed := NewFeed(src)

	if _, err := feed.More(context.Background()); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if _, err := feed.More(context.Background()); err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if len(src.exclude) != 2 || src.exclude[0] != "巴黎" || src.exclude[1] != "京都" {
		t.Fatalf("exclusions: %v", src.exclude)
	}
}

func TestFeedFallsBackOnFetchFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("model unavailable")}
	feed := NewFeed(src)

	added, err := feed.More(context.Background())
	if err != nil {
		t.Fatalf("fallback should not surface the error: %v", err)
	}
	if len(added) == 0 {
		t.Fatalf("feed is empty after failure")
	}
	for _, d := range added {
		if d.Name == "" || d.ImageKeyword == "" {
			t.Fatalf("incomplete fallback entry: %+v", d)
		}
	}
}

func TestFeedRejectsConcurrentFetch(t *testing.T) {
	src := &fakeSource{
		batches: [][]genai.DestinationDetails{places("巴黎")},
		block:   make(chan struct{}),
	}
	feed := NewFeed(src)

	done := make(chan error, 1)
	go func() {
		_, err := feed.More(context.Background())
		done <- err
	}()

	// Wait for the first fetch to be in flight.
	deadline := time.After(time.Second)
	for {
		src.mu.Lock()
		started := src.exclude != nil
		src.mu.Unlock()
		if started {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("fetch never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := feed.More(context.Background()); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(src.block)
	if err := <-done; err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := feed.More(context.Background()); err != nil {
		t.Fatalf("feed stuck busy after completion: %v", err)
	}
}

func TestFeedReset(t *testing.T) {
	src := &fakeSource{batches: [][]genai.DestinationDetails{
		places("巴黎"),
		places("巴黎"),
	}}
	feed := NewFeed(src)

	if _, err := feed.More(context.Background()); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	feed.Reset()
	if len(feed.Entries()) != 0 {
		t.Fatalf("entries survived reset")
	}

	added, err := feed.More(context.Background())
	if err != nil {
		t.Fatalf("after reset: %v", err)
	}
	if len(added) != 1 || added[0].Name != "巴黎" {
		t.Fatalf("reset did not clear the dedup set: %v", names(added))
	}
}
