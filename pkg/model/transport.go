package model

import "strings"

// TransportKind is the icon category shown for a transport leg.
type TransportKind string

const (
	TransportWalk  TransportKind = "walking"
	TransportCar   TransportKind = "car"
	TransportBus   TransportKind = "bus"
	TransportTrain TransportKind = "train"
	TransportBike  TransportKind = "bicycle"
	TransportTaxi  TransportKind = "taxi"
	TransportBoat  TransportKind = "boat"
	TransportPlane TransportKind = "plane"
	// TransportDefault is used when no keyword matches.
	TransportDefault TransportKind = "route"
)

// transportKeywords maps case-insensitive substrings to a transport kind.
// Covers English and Indonesian vocabulary; order matters, first match wins.
var transportKeywords = []struct {
	kind  TransportKind
	words []string
}{
	{TransportWalk, []string{"walk", "jalan kaki"}},
	{TransportCar, []string{"car", "driv", "mobil", "mengemudi"}},
	{TransportBus, []string{"bus", "transit", "public", "bis", "angkutan umum"}},
	{TransportTrain, []string{"train", "subway", "metro", "kereta"}},
	{TransportBike, []string{"bike", "cycl", "sepeda"}},
	{TransportTaxi, []string{"taxi", "cab", "taksi"}},
	{TransportBoat, []string{"boat", "ferry", "perahu", "feri"}},
	{TransportPlane, []string{"plane", "fly", "pesawat", "terbang"}},
}

// ClassifyTransport maps a free-form transport description to an icon
// category. Unrecognized input returns TransportDefault.
func ClassifyTransport(transport string) TransportKind {
	t := strings.ToLower(transport)
	for _, entry := range transportKeywords {
		for _, w := range entry.words {
			if strings.Contains(t, w) {
				return entry.kind
			}
		}
	}
	return TransportDefault
}
