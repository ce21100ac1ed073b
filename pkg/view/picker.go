package view

import (
	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/geo"
)

// Names of the form fields the picker writes when none are supplied
// by the page.
const (
	DefaultLatField = "latitude"
	DefaultLngField = "longitude"
)

const (
	meetingMarkerID      = "meeting-point"
	meetingMarkerVariant = "meeting"
)

// PickerState is the serializable state of one pick-location page.
// Chosen is nil until a point inside the boundary has been picked.
type PickerState struct {
	LatField string
	LngField string
	Chosen   *geo.Point
}

type PickerOptions struct {
	LatField string
	LngField string
	// Initial puts the picker straight into the set state, used when
	// editing a request that already has a meeting point.
	Initial *geo.Point
}

// Picker is the meeting-point selection state machine: unset until a
// click lands inside the campus, set with exactly one marker after.
type Picker struct {
	state  *PickerState
	campus *campus.Campus
	canvas MapCanvas
	page   Page
}

func NewPicker(cam *campus.Campus, canvas MapCanvas, page Page, opts PickerOptions) *Picker {
	state := &PickerState{
		LatField: opts.LatField,
		LngField: opts.LngField,
	}
	if state.LatField == "" {
		state.LatField = DefaultLatField
	}
	if state.LngField == "" {
		state.LngField = DefaultLngField
	}

	p := &Picker{
		state:  state,
		campus: cam,
		canvas: canvas,
		page:   page,
	}
	if opts.Initial != nil {
		p.setPoint(*opts.Initial)
		p.canvas.PanTo(*opts.Initial)
	}
	return p
}

// RestorePicker rebinds a stored state to live sinks for the next
// event.
func RestorePicker(state *PickerState, cam *campus.Campus, canvas MapCanvas, page Page) *Picker {
	return &Picker{
		state:  state,
		campus: cam,
		canvas: canvas,
		page:   page,
	}
}

func (p *Picker) State() *PickerState {
	return p.state
}

func (p *Picker) IsSet() bool {
	return p.state.Chosen != nil
}

// Click handles one map click. Outside the boundary nothing changes
// except the status line; inside, the single meeting marker is placed
// or relocated and both form fields are rewritten.
func (p *Picker) Click(at geo.Point) {
	if !p.campus.Contains(at) {
		p.page.SetStatus(LevelError, MsgOutsideBoundary)
		return
	}
	p.setPoint(at)
	p.page.SetStatus(LevelSuccess, MsgMeetingPointSet)
}

func (p *Picker) setPoint(at geo.Point) {
	p.state.Chosen = &at
	p.canvas.PlaceMarker(meetingMarkerID, at, meetingMarkerVariant)
	p.page.SetField(p.state.LatField, geo.FormatCoord(at.Lat))
	p.page.SetField(p.state.LngField, geo.FormatCoord(at.Lon))
}
