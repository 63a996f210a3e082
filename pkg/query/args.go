package query

import (
	"fmt"
	"math"
	"strconv"

	"maproute/pkg/model"
	"maproute/pkg/scene"
)

// parseLocationArgs validates the raw argument map of a "location" call.
// Malformed payloads are rejected here, at the interpreter boundary, instead
// of propagating meaningless coordinates into rendering.
func parseLocationArgs(args map[string]any) (scene.LocationArgs, error) {
	name, _ := args["name"].(string)
	if name == "" {
		return scene.LocationArgs{}, fmt.Errorf("location call without a name")
	}

	lat, err := parseCoord(args["lat"])
	if err != nil {
		return scene.LocationArgs{}, fmt.Errorf("location %q: bad lat: %w", name, err)
	}
	lng, err := parseCoord(args["lng"])
	if err != nil {
		return scene.LocationArgs{}, fmt.Errorf("location %q: bad lng: %w", name, err)
	}

	out := scene.LocationArgs{
		Name: name,
		Lat:  lat,
		Lng:  lng,
	}
	out.Description, _ = args["description"].(string)
	out.Time, _ = args["time"].(string)
	out.Duration, _ = args["duration"].(string)
	out.Sequence = parseSequence(args["sequence"])

	return out, nil
}

// parseRouteArgs validates the raw argument map of a "line" call.
func parseRouteArgs(args map[string]any) (scene.RouteArgs, error) {
	name, _ := args["name"].(string)
	if name == "" {
		return scene.RouteArgs{}, fmt.Errorf("line call without a name")
	}

	start, err := parsePoint(args["start"])
	if err != nil {
		return scene.RouteArgs{}, fmt.Errorf("line %q: bad start: %w", name, err)
	}
	end, err := parsePoint(args["end"])
	if err != nil {
		return scene.RouteArgs{}, fmt.Errorf("line %q: bad end: %w", name, err)
	}

	out := scene.RouteArgs{
		Name:  name,
		Start: start,
		End:   end,
	}
	out.Transport, _ = args["transport"].(string)
	out.TravelTime, _ = args["travelTime"].(string)

	return out, nil
}

func parsePoint(v any) (model.Point, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return model.Point{}, fmt.Errorf("expected an object with lat/lng, got %T", v)
	}
	lat, err := parseCoord(m["lat"])
	if err != nil {
		return model.Point{}, fmt.Errorf("bad lat: %w", err)
	}
	lng, err := parseCoord(m["lng"])
	if err != nil {
		return model.Point{}, fmt.Errorf("bad lng: %w", err)
	}
	return model.Point{Lat: lat, Lng: lng}, nil
}

// parseCoord accepts the coordinate either as a string (the declared schema
// type) or as a JSON number, since models emit both.
func parseCoord(v any) (float64, error) {
	var f float64
	switch val := v.(type) {
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric coordinate %q", val)
		}
		f = parsed
	case float64:
		f = val
	case int:
		f = float64(val)
	case nil:
		return 0, fmt.Errorf("missing coordinate")
	default:
		return 0, fmt.Errorf("unsupported coordinate type %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("coordinate is not finite")
	}
	return f, nil
}

func parseSequence(v any) *int {
	switch val := v.(type) {
	case float64:
		n := int(val)
		return &n
	case int:
		n := val
		return &n
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return &n
		}
	}
	return nil
}
