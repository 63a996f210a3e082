package gemini

import "google.golang.org/genai"

// locationDeclaration describes the "location" tool: one place of interest
// with coordinates and, in planner mode, scheduling hints.
var locationDeclaration = &genai.FunctionDeclaration{
	Name:        "location",
	Description: "Geographic coordinates of a location.",
	Parameters: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        genai.TypeString,
				Description: "Name of the location.",
			},
			"description": {
				Type:        genai.TypeString,
				Description: "Description of the location: why is it relevant, details to know.",
			},
			"lat": {
				Type:        genai.TypeString,
				Description: "Latitude of the location.",
			},
			"lng": {
				Type:        genai.TypeString,
				Description: "Longitude of the location.",
			},
			// Day-planner mode only.
			"time": {
				Type:        genai.TypeString,
				Description: `Time of day to visit this location (e.g., "09:00", "14:30").`,
			},
			"duration": {
				Type:        genai.TypeString,
				Description: `Suggested duration of stay at this location (e.g., "1 hour", "45 minutes").`,
			},
			"sequence": {
				Type:        genai.TypeNumber,
				Description: "Order in the day itinerary (1 = first stop of the day).",
			},
		},
		Required: []string{"name", "description", "lat", "lng"},
	},
}

// lineDeclaration describes the "line" tool: a connection between a start
// and an end location.
var lineDeclaration = &genai.FunctionDeclaration{
	Name:        "line",
	Description: "Connection between a start location and an end location.",
	Parameters: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        genai.TypeString,
				Description: "Name of the route or connection",
			},
			"start": {
				Type:        genai.TypeObject,
				Description: "Start location of the route",
				Properties: map[string]*genai.Schema{
					"lat": {
						Type:        genai.TypeString,
						Description: "Latitude of the start location.",
					},
					"lng": {
						Type:        genai.TypeString,
						Description: "Longitude of the start location.",
					},
				},
			},
			"end": {
				Type:        genai.TypeObject,
				Description: "End location of the route",
				Properties: map[string]*genai.Schema{
					"lat": {
						Type:        genai.TypeString,
						Description: "Latitude of the end location.",
					},
					"lng": {
						Type:        genai.TypeString,
						Description: "Longitude of the end location.",
					},
				},
			},
			// Day-planner mode only.
			"transport": {
				Type:        genai.TypeString,
				Description: `Mode of transportation between locations (e.g., "walking", "driving", "public transit").`,
			},
			"travelTime": {
				Type:        genai.TypeString,
				Description: `Estimated travel time between locations (e.g., "15 minutes", "1 hour").`,
			},
		},
		Required: []string{"name", "start", "end"},
	},
}
