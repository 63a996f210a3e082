package trip

import (
	"fmt"
	"strings"

	"maproute/pkg/model"
)

// ExportFileName is the download name for the exported plan.
const ExportFileName = "day-plan.txt"

// Export serializes the itinerary into a human-readable plan document: one
// heading block per stop in itinerary order, with a travel block between
// stops when an associating route is found. Returns "" for an empty
// itinerary.
func (it *Itinerary) Export(routes []*model.Route) string {
	sorted := it.Sorted()
	if len(sorted) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("# Your Day Plan\n\n")

	for i, stop := range sorted {
		timeDisplay := stop.Time
		if timeDisplay == "" {
			timeDisplay = flexibleTime
		}

		fmt.Fprintf(&sb, "## %d. %s\n", i+1, stop.Name)
		fmt.Fprintf(&sb, "Time: %s\n", timeDisplay)
		if stop.Duration != "" {
			fmt.Fprintf(&sb, "Duration: %s\n", stop.Duration)
		}
		fmt.Fprintf(&sb, "\n%s\n\n", stop.Description)

		if i == len(sorted)-1 {
			continue
		}
		next := sorted[i+1]
		route := FindConnecting(routes, stop, next)
		if route == nil {
			continue
		}

		method := route.Transport
		if method == "" {
			method = "Unspecified"
		}
		fmt.Fprintf(&sb, "### Travel to %s\n", next.Name)
		fmt.Fprintf(&sb, "Method: %s\n", method)
		if route.TravelTime != "" {
			fmt.Fprintf(&sb, "Time: %s\n", route.TravelTime)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
