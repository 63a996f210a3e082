package session

// PanelState models the timeline panel as an explicit state machine instead
// of fixed animation delays. Transitions out of the intermediate states are
// driven by the PanelSettled event from the rendering collaborator.
type PanelState int

const (
	PanelClosed PanelState = iota
	PanelOpening
	PanelOpen
	PanelClosing
)

func (p PanelState) String() string {
	switch p {
	case PanelClosed:
		return "closed"
	case PanelOpening:
		return "opening"
	case PanelOpen:
		return "open"
	case PanelClosing:
		return "closing"
	}
	return "unknown"
}
