package models

import "time"

// ViewEventKind names the selection that changed
type ViewEventKind string

const (
	EventRegionSelected  ViewEventKind = "region_selected"
	EventMatchupSelected ViewEventKind = "matchup_selected"
	EventViewChanged     ViewEventKind = "view_changed"
)

// ViewEvent records a single change of a client's view state
type ViewEvent struct {
	ID           string        `json:"id"`
	ViewID       string        `json:"view_id"`
	Kind         ViewEventKind `json:"kind"`
	Region       Region        `json:"region"`
	MatchupIndex int           `json:"matchup_index"` // -1 when nothing is selected
	View         View          `json:"view"`
	Timestamp    time.Time     `json:"timestamp"`
}
