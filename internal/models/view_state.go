package models

import "time"

// View is one of the presentation tabs
type View string

const (
	ViewBracket View = "bracket"
	ViewStats   View = "stats"
	ViewUpsets  View = "upsets"
)

// ViewState is the selection state owned by a single client of the
// presentation layer. The statistics engine never reads it.
type ViewState struct {
	ID              string    `json:"id"`
	Region          Region    `json:"region" validate:"required,oneof=East West South Midwest"`
	SelectedMatchup *int      `json:"selected_matchup" validate:"omitempty,gte=0"`
	View            View      `json:"view" validate:"required,oneof=bracket stats upsets"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultViewState mirrors the initial screen: East region, bracket view,
// nothing selected.
func DefaultViewState(id string, now time.Time) ViewState {
	return ViewState{
		ID:        id,
		Region:    RegionEast,
		View:      ViewBracket,
		UpdatedAt: now,
	}
}

// ViewStateUpdate is a partial update; nil fields are left unchanged.
// ClearMatchup drops the current matchup selection.
type ViewStateUpdate struct {
	Region          *Region `json:"region,omitempty" validate:"omitempty,oneof=East West South Midwest"`
	SelectedMatchup *int    `json:"selected_matchup,omitempty" validate:"omitempty,gte=0"`
	ClearMatchup    bool    `json:"clear_matchup,omitempty"`
	View            *View   `json:"view,omitempty" validate:"omitempty,oneof=bracket stats upsets"`
}
