package session

import "maproute/pkg/model"

// CardView is the view-model for one carousel card. All display data is
// computed server-side so the frontend stays a dumb renderer.
type CardView struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Coordinates string `json:"coordinates"`

	// Planner-mode badges.
	Time     string `json:"time,omitempty"`
	Duration string `json:"duration,omitempty"`
	Sequence *int   `json:"sequence,omitempty"`
	Planner  bool   `json:"planner"`

	// Deterministic placeholder image derived from the title.
	ImageHue        int    `json:"imageHue"`
	ImageSaturation int    `json:"imageSaturation"`
	ImageLightness  int    `json:"imageLightness"`
	ImageLetter     string `json:"imageLetter"`
}

// View is the interface to the card carousel / timeline UI collaborator.
// Like scene.Renderer it is driven from one goroutine per session; the
// implementation owns scrolling, CSS transitions and DOM mechanics.
type View interface {
	// ShowCards renders the carousel and its indicator dots.
	ShowCards(cards []CardView)

	// SetActiveCard marks exactly one card active, centers it and updates
	// the indicator dots.
	SetActiveCard(index int)

	// ShowTimeline renders the timeline rows.
	ShowTimeline(rows []model.TimelineRow)

	// SetActiveTimelineRow highlights one row and scrolls it into view.
	SetActiveTimelineRow(index int)

	// SetTimelinePanel opens or closes the timeline panel. The collaborator
	// animates the transition and reports completion via the session's
	// PanelSettled.
	SetTimelinePanel(open bool)

	// SetLoading shows or hides the map loading indicator.
	SetLoading(active bool)

	// ShowError displays a user-facing error message in the error region.
	ShowError(message string)

	// ClearViews empties cards, dots, timeline and the error region.
	ClearViews()
}
