// Package view drives the browser's map pages. Each page holds a dumb
// script that applies directives; the state machines that decide what
// happens live here.
package view

// Directive is one instruction for the hosting page: a map mutation,
// a card change, or a status line update. The page script applies
// them in order.
type Directive struct {
	Op     string                 `json:"op"`
	Params map[string]interface{} `json:"params,omitempty"`
}

const (
	OpFitBounds      = "fit_bounds"
	OpDrawBoundary   = "draw_boundary"
	OpPlaceMarker    = "place_marker"
	OpRemoveMarker   = "remove_marker"
	OpBounceMarker   = "bounce_marker"
	OpPanTo          = "pan_to"
	OpEnsureZoom     = "ensure_zoom"
	OpOpenPopup      = "open_popup"
	OpClosePopup     = "close_popup"
	OpSetActiveCard  = "set_active_card"
	OpScrollCard     = "scroll_card"
	OpSetCardVisible = "set_card_visible"
	OpSetField       = "set_field"
	OpSetStatus      = "set_status"
	OpNavigate       = "navigate"
)

type StatusLevel string

const (
	LevelInfo    StatusLevel = "info"
	LevelSuccess StatusLevel = "success"
	LevelError   StatusLevel = "error"
)

// Messages shown on the page status line.
const (
	MsgOutsideBoundary = "That spot is outside the campus boundary. Pick a point inside the outline."
	MsgMeetingPointSet = "Meeting point set. Click again to adjust."
	MsgLocated         = "Showing your current location."
	MsgLocatedApprox   = "Showing your approximate location."
	MsgLocateFailed    = "We couldn't determine your location."
)
