package session

import (
	"strings"

	"maproute/pkg/model"
)

// buildCards derives the carousel view-models from the locations in
// creation order.
func buildCards(locations []*model.Location, planner bool) []CardView {
	cards := make([]CardView, 0, len(locations))
	for i, loc := range locations {
		hue, sat, light := placeholderColor(loc.Name)
		card := CardView{
			Index:           i,
			Title:           loc.Name,
			Description:     loc.Description,
			Coordinates:     loc.Position.String(),
			Planner:         planner,
			ImageHue:        hue,
			ImageSaturation: sat,
			ImageLightness:  light,
			ImageLetter:     placeholderLetter(loc.Name),
		}
		if planner {
			card.Time = loc.Time
			card.Duration = loc.Duration
			card.Sequence = loc.Sequence
		}
		cards = append(cards, card)
	}
	return cards
}

// placeholderColor derives a stable HSL color from the name so cards get a
// recognizable placeholder image without any image service.
func placeholderColor(name string) (hue, saturation, lightness int) {
	var hash int32
	for _, r := range name {
		hash = r + ((hash << 5) - hash)
	}
	h := int(hash) % 360
	if h < 0 {
		h += 360
	}
	s := int(hash) % 30
	if s < 0 {
		s += 30
	}
	l := int(hash) % 20
	if l < 0 {
		l += 20
	}
	return h, 60 + s, 50 + l
}

func placeholderLetter(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(trimmed)[0]))
}
