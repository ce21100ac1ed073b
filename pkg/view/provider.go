package view

import (
	"time"

	"github.com/mentora-labs/campus-map/pkg/geo"
)

// MapCanvas is the slice of the mapping provider the views drive:
// viewport, boundary outline, markers, popups. The production
// implementation records directives for the page script; tests may
// substitute their own.
type MapCanvas interface {
	FitBounds(bound geo.BoundingBox)
	DrawBoundary(ring []geo.Point)
	// PlaceMarker adds the marker or relocates it when the id is
	// already on the map.
	PlaceMarker(id string, at geo.Point, variant string)
	RemoveMarker(id string)
	BounceMarker(id string, duration time.Duration)
	PanTo(p geo.Point)
	EnsureZoom(min int)
	OpenPopup(at geo.Point, html string)
	ClosePopup()
}

// Page covers the DOM surface outside the map: request cards, the
// picker's form fields, the status line.
type Page interface {
	// SetActiveCard highlights the card and clears any previously
	// active one.
	SetActiveCard(id string)
	ScrollCard(id string)
	SetCardVisible(id string, visible bool)
	SetField(name, value string)
	SetStatus(level StatusLevel, message string)
	Navigate(url string)
}

// Recorder implements both sink interfaces by collecting directives
// for the page script to apply.
type Recorder struct {
	directives []Directive
}

var _ MapCanvas = (*Recorder)(nil)
var _ Page = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Drain returns the recorded directives and resets the recorder.
func (r *Recorder) Drain() []Directive {
	out := r.directives
	r.directives = nil
	return out
}

// Directives returns the recorded directives without resetting.
func (r *Recorder) Directives() []Directive {
	return r.directives
}

func (r *Recorder) append(op string, params map[string]interface{}) {
	r.directives = append(r.directives, Directive{Op: op, Params: params})
}

func (r *Recorder) FitBounds(bound geo.BoundingBox) {
	min, max := bound.GetMin(), bound.GetMax()
	r.append(OpFitBounds, map[string]interface{}{
		"min_lat": min[0],
		"min_lon": min[1],
		"max_lat": max[0],
		"max_lon": max[1],
	})
}

func (r *Recorder) DrawBoundary(ring []geo.Point) {
	r.append(OpDrawBoundary, map[string]interface{}{
		"ring": ring,
	})
}

func (r *Recorder) PlaceMarker(id string, at geo.Point, variant string) {
	r.append(OpPlaceMarker, map[string]interface{}{
		"id":      id,
		"lat":     at.Lat,
		"lon":     at.Lon,
		"variant": variant,
	})
}

func (r *Recorder) RemoveMarker(id string) {
	r.append(OpRemoveMarker, map[string]interface{}{
		"id": id,
	})
}

func (r *Recorder) BounceMarker(id string, duration time.Duration) {
	r.append(OpBounceMarker, map[string]interface{}{
		"id":          id,
		"duration_ms": duration.Milliseconds(),
	})
}

func (r *Recorder) PanTo(p geo.Point) {
	r.append(OpPanTo, map[string]interface{}{
		"lat": p.Lat,
		"lon": p.Lon,
	})
}

func (r *Recorder) EnsureZoom(min int) {
	r.append(OpEnsureZoom, map[string]interface{}{
		"min": min,
	})
}

func (r *Recorder) OpenPopup(at geo.Point, html string) {
	r.append(OpOpenPopup, map[string]interface{}{
		"lat":  at.Lat,
		"lon":  at.Lon,
		"html": html,
	})
}

func (r *Recorder) ClosePopup() {
	r.append(OpClosePopup, nil)
}

func (r *Recorder) SetActiveCard(id string) {
	r.append(OpSetActiveCard, map[string]interface{}{
		"id": id,
	})
}

func (r *Recorder) ScrollCard(id string) {
	r.append(OpScrollCard, map[string]interface{}{
		"id":     id,
		"smooth": true,
	})
}

func (r *Recorder) SetCardVisible(id string, visible bool) {
	r.append(OpSetCardVisible, map[string]interface{}{
		"id":      id,
		"visible": visible,
	})
}

func (r *Recorder) SetField(name, value string) {
	r.append(OpSetField, map[string]interface{}{
		"name":  name,
		"value": value,
	})
}

func (r *Recorder) SetStatus(level StatusLevel, message string) {
	r.append(OpSetStatus, map[string]interface{}{
		"level":   string(level),
		"message": message,
	})
}

func (r *Recorder) Navigate(url string) {
	r.append(OpNavigate, map[string]interface{}{
		"url": url,
	})
}
