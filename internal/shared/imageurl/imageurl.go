package imageurl

import "net/url"

// Prompt-templated image URLs served by pollinations.ai. The keyword comes
// from the generative service (always English) or a destination name; no
// authentication is involved.

const base = "https://image.pollinations.ai/prompt/"

func build(keyword, suffix string) string {
	return base + url.PathEscape(keyword+" "+suffix) + "?nologo=true"
}

// Cover is the banner image stored on a saved itinerary.
func Cover(keyword string) string {
	return build(keyword, "city landmark 4k")
}

// Scenery illustrates a destination card in search results.
func Scenery(keyword string) string {
	return build(keyword, "scenery travel 4k")
}

// Inspiration illustrates an entry in the inspiration feed.
func Inspiration(keyword string) string {
	return build(keyword, "travel scenery photorealistic 4k")
}
