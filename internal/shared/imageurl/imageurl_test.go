package imageurl

import (
	"strings"
	"testing"
)

func TestTemplates(t *testing.T) {
	cover := Cover("Eiffel Tower")
	if !strings.HasPrefix(cover, "https://image.pollinations.ai/prompt/") {
		t.Fatalf("unexpected base: %s", cover)
	}
	if !strings.Contains(cover, "Eiffel%20Tower%20city%20landmark%204k") {
		t.Fatalf("keyword not escaped into cover template: %s", cover)
	}
	if !strings.HasSuffix(cover, "?nologo=true") {
		t.Fatalf("missing nologo parameter: %s", cover)
	}

	if !strings.Contains(Scenery("Kyoto"), "Kyoto%20scenery%20travel%204k") {
		t.Fatalf("unexpected scenery template: %s", Scenery("Kyoto"))
	}
	if !strings.Contains(Inspiration("Banff"), "Banff%20travel%20scenery%20photorealistic%204k") {
		t.Fatalf("unexpected inspiration template: %s", Inspiration("Banff"))
	}
}
