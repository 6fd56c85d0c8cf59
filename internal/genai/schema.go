package genai

// schema is the subset of the OpenAPI schema object accepted by the
// generateContent responseSchema field.
type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

var destinationSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"name":            {Type: "STRING", Description: "Name in the requested language"},
		"country":         {Type: "STRING", Description: "Country in the requested language"},
		"description":     {Type: "STRING", Description: "Description in the requested language"},
		"bestTimeToVisit": {Type: "STRING", Description: "Best time in the requested language"},
		"imageKeyword":    {Type: "STRING", Description: "A single english keyword to search for an image of this place, e.g. 'Eiffel Tower' or 'Kyoto Streets'"},
		"rating":          {Type: "NUMBER", Description: "A rating from 1 to 5 based on popularity"},
	},
	Required: []string{"name", "country", "description", "bestTimeToVisit", "imageKeyword"},
}

var itinerarySchema = &schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"day":   {Type: "INTEGER"},
			"title": {Type: "STRING", Description: "Short theme for the day in the requested language"},
			"activities": {
				Type:        "ARRAY",
				Description: "List of key activities for the day with specific time slots.",
				Items: &schema{
					Type: "OBJECT",
					Properties: map[string]*schema{
						"time":        {Type: "STRING", Description: "Time range (e.g., '09:00 - 11:00')"},
						"description": {Type: "STRING", Description: "Activity description in the requested language"},
					},
					Required: []string{"time", "description"},
				},
			},
		},
		Required: []string{"day", "title", "activities"},
	},
}

var inspirationSchema = &schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"name":            {Type: "STRING", Description: "Name in the requested language"},
			"country":         {Type: "STRING", Description: "Country in the requested language"},
			"description":     {Type: "STRING", Description: "Description in the requested language"},
			"imageKeyword":    {Type: "STRING", Description: "English keyword for image generation"},
			"bestTimeToVisit": {Type: "STRING", Description: "Best time in the requested language"},
		},
		Required: []string{"name", "country", "description", "imageKeyword", "bestTimeToVisit"},
	},
}
