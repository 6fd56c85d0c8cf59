package genai

import (
	"fmt"
	"strings"
)

// The service answers in the configured language; imageKeyword stays English
// because it feeds an image-prompt URL.

func (c *Client) lookupPrompt(query string) string {
	return fmt.Sprintf(
		"Provide travel details for %s. Return JSON. The content MUST be in %s, except for imageKeyword which must be English.",
		query, c.language,
	)
}

func (c *Client) planPrompt(destination string, days int, tc *TimeContext, style Style) string {
	return fmt.Sprintf(
		"Create a %d-day travel itinerary for %s. %s %sReturn JSON. The content MUST be in %s. Ensure every activity has a specific time range.",
		days, destination, stylePrompt(style), timePrompt(tc), c.language,
	)
}

func (c *Client) inspirationPrompt(exclude []string) string {
	excludePart := ""
	if len(exclude) > 0 {
		excludePart = fmt.Sprintf("Do not include these destinations: %s. ", strings.Join(exclude, ", "))
	}
	return fmt.Sprintf(
		"List 6 random, unique, and popular travel destinations around the world. Mix of nature, cities, and hidden gems. %sReturn JSON. The content MUST be in %s, except for imageKeyword which must be English.",
		excludePart, c.language,
	)
}

func stylePrompt(style Style) string {
	switch style {
	case StyleVacation:
		return "Travel Style: Vacation/Resort (度假游). Very relaxed pace. Focus on relaxation, enjoying the hotel/resort. Provide relaxed time slots (e.g. 10:00-12:00, 14:00-16:00). No rushing."
	case StyleIntense:
		return "Travel Style: 'Special Forces' style (特种兵打卡). Extremely fast-paced and packed itinerary. Maximize the number of attractions. Provide TIGHT and PRECISE time slots starting early and ending late (e.g. 06:00-07:30, 07:45-09:00)."
	default:
		return "Travel Style: Leisure (休闲游). Balanced pace. Standard sightseeing. Provide reasonable time slots for 3-4 attractions per day."
	}
}

func timePrompt(tc *TimeContext) string {
	if tc == nil {
		return ""
	}
	return fmt.Sprintf(
		"The traveler arrives at %s and departs at %s. CRITICAL: Plan the first day's activities ONLY AFTER the arrival time. Plan the last day's activities ONLY BEFORE the departure time. Mention the arrival and departure in the activities list with correct times. ",
		tc.Arrival, tc.Departure,
	)
}
