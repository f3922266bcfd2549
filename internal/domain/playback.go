package domain

// DecisionKind tells the caller how a playback request proceeds
type DecisionKind int

const (
	// PlayDirectly opens the player immediately
	PlayDirectly DecisionKind = iota
	// PlayAfterAd requires an advertisement to finish (or be skipped) first
	PlayAfterAd
)

// String returns the metric/log label for the decision
func (k DecisionKind) String() string {
	switch k {
	case PlayDirectly:
		return "direct"
	case PlayAfterAd:
		return "after_ad"
	default:
		return "unknown"
	}
}

// PlaybackDecision is the Entitlement Gate's answer for one request.
type PlaybackDecision struct {
	Kind  DecisionKind
	Title Title
}
