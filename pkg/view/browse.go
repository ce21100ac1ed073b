package view

import (
	"sort"
	"time"

	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/geo"
)

const (
	// BounceDuration is how long an activated marker animates before
	// the page stops it.
	BounceDuration = 1400 * time.Millisecond

	minActiveZoom = 17
	locateZoom    = 17

	userMarkerID      = "you"
	userMarkerVariant = "you"
)

// MarkerState mirrors one marker the page currently shows.
type MarkerState struct {
	RequestID string    `json:"request_id"`
	Pos       geo.Point `json:"pos"`
	Variant   string    `json:"variant"`
}

// BrowseState is the serializable state of one map page: what is on
// the map and which request is active. It never outlives the page
// session.
type BrowseState struct {
	Markers     []MarkerState
	ActiveID    string
	PopupID     string
	UserMarker  *geo.Point
	Query       string
	Hidden      map[string]bool
	BounceID    string
	BounceUntil time.Time
}

// Browse is the request-browsing state machine. One instance handles
// one page event at a time; the usecase layer serializes access.
type Browse struct {
	state   *BrowseState
	catalog *catalog.Catalog
	campus  *campus.Campus
	canvas  MapCanvas
	page    Page
	now     func() time.Time
}

// ActivateOptions mirror the setActive protocol: whether to pan the
// map, whether to bounce the marker, and whether the activation came
// from a marker click (which suppresses card scrolling).
type ActivateOptions struct {
	Pan        bool
	Bounce     bool
	FromMarker bool
}

// NewBrowse builds a fresh page: viewport fitted to the boundary,
// outline drawn, one marker per request, and the first request
// activated.
func NewBrowse(cat *catalog.Catalog, cam *campus.Campus, canvas MapCanvas, page Page, now func() time.Time) *Browse {
	if now == nil {
		now = time.Now
	}
	b := &Browse{
		state: &BrowseState{
			Hidden: make(map[string]bool),
		},
		catalog: cat,
		campus:  cam,
		canvas:  canvas,
		page:    page,
		now:     now,
	}

	bound := cam.Bound()
	b.canvas.FitBounds(bound)
	b.canvas.DrawBoundary(cam.Ring())
	for _, r := range cat.All() {
		b.canvas.PlaceMarker(r.ID, r.Point, r.Variant)
		b.state.Markers = append(b.state.Markers, MarkerState{
			RequestID: r.ID,
			Pos:       r.Point,
			Variant:   r.Variant,
		})
	}
	if first, ok := cat.First(); ok {
		_ = b.Activate(first.ID, ActivateOptions{})
	}
	return b
}

// RestoreBrowse rebinds a stored state to live sinks for the next
// event.
func RestoreBrowse(state *BrowseState, cat *catalog.Catalog, cam *campus.Campus, canvas MapCanvas, page Page, now func() time.Time) *Browse {
	if now == nil {
		now = time.Now
	}
	if state.Hidden == nil {
		state.Hidden = make(map[string]bool)
	}
	return &Browse{
		state:   state,
		catalog: cat,
		campus:  cam,
		canvas:  canvas,
		page:    page,
		now:     now,
	}
}

func (b *Browse) State() *BrowseState {
	return b.state
}

// Activate makes the request the single active one: any open popup
// closes, its card highlights (and scrolls into view unless the
// activation came from the marker itself), and the marker optionally
// bounces and is panned to.
func (b *Browse) Activate(id string, opt ActivateOptions) error {
	req, err := b.catalog.ByID(id)
	if err != nil {
		return err
	}

	b.closePopup()
	b.state.ActiveID = id
	b.page.SetActiveCard(id)
	if !opt.FromMarker {
		b.page.ScrollCard(id)
	}
	if opt.Bounce {
		b.state.BounceID = id
		b.state.BounceUntil = b.now().Add(BounceDuration)
		b.canvas.BounceMarker(id, BounceDuration)
	}
	if opt.Pan {
		b.canvas.PanTo(req.Point)
		b.canvas.EnsureZoom(minActiveZoom)
	}
	return nil
}

// HoverCard previews a request without panning or bouncing.
func (b *Browse) HoverCard(id string) error {
	return b.Activate(id, ActivateOptions{})
}

// ClickCard follows the second-click convention: the first click
// activates the request, a click on the already-active card navigates
// to its detail page.
func (b *Browse) ClickCard(id string) error {
	req, err := b.catalog.ByID(id)
	if err != nil {
		return err
	}
	if b.state.ActiveID == id {
		b.page.Navigate(req.DetailURL)
		return nil
	}
	return b.Activate(id, ActivateOptions{Pan: true, Bounce: true})
}

// ClickMarker activates from the map side and opens the request's
// popup at the marker.
func (b *Browse) ClickMarker(id string) error {
	req, err := b.catalog.ByID(id)
	if err != nil {
		return err
	}
	if err := b.Activate(id, ActivateOptions{Bounce: true, FromMarker: true}); err != nil {
		return err
	}

	html, err := RenderPopup(b.now(), req)
	if err != nil {
		return err
	}
	b.state.PopupID = id
	b.canvas.OpenPopup(req.Point, html)
	return nil
}

// Search filters the card list. Markers are deliberately left alone;
// only card visibility follows the query.
func (b *Browse) Search(query string) {
	b.state.Query = query
	for _, r := range b.catalog.All() {
		visible := r.Matches(query)
		b.page.SetCardVisible(r.ID, visible)
		if visible {
			delete(b.state.Hidden, r.ID)
		} else {
			b.state.Hidden[r.ID] = true
		}
	}
}

// Locate shows the user's position. A nil point means no usable
// source was available; the platform's error text, when present,
// becomes the status message. Request markers are never touched.
func (b *Browse) Locate(p *geo.Point, approximate bool, platformErr string) {
	if p == nil {
		msg := platformErr
		if msg == "" {
			msg = MsgLocateFailed
		}
		b.page.SetStatus(LevelError, msg)
		return
	}

	b.state.UserMarker = p
	b.canvas.PlaceMarker(userMarkerID, *p, userMarkerVariant)
	b.canvas.PanTo(*p)
	b.canvas.EnsureZoom(locateZoom)
	if approximate {
		b.page.SetStatus(LevelInfo, MsgLocatedApprox)
	} else {
		b.page.SetStatus(LevelSuccess, MsgLocated)
	}
}

// Bouncing reports which marker should still be animating at the
// given instant, if any.
func (b *Browse) Bouncing(at time.Time) (string, bool) {
	if b.state.BounceID == "" || at.After(b.state.BounceUntil) {
		return "", false
	}
	return b.state.BounceID, true
}

func (b *Browse) closePopup() {
	if b.state.PopupID == "" {
		return
	}
	b.state.PopupID = ""
	b.canvas.ClosePopup()
}

// BrowseSnapshot is the read-only answer to "what does this page look
// like right now".
type BrowseSnapshot struct {
	ActiveID    string        `json:"active_id"`
	PopupID     string        `json:"popup_id,omitempty"`
	Query       string        `json:"query,omitempty"`
	Markers     []MarkerState `json:"markers"`
	HiddenCards []string      `json:"hidden_cards,omitempty"`
	UserMarker  *geo.Point    `json:"user_marker,omitempty"`
	Bouncing    string        `json:"bouncing,omitempty"`
}

func (b *Browse) Snapshot(at time.Time) BrowseSnapshot {
	snap := BrowseSnapshot{
		ActiveID:   b.state.ActiveID,
		PopupID:    b.state.PopupID,
		Query:      b.state.Query,
		Markers:    b.state.Markers,
		UserMarker: b.state.UserMarker,
	}
	if id, ok := b.Bouncing(at); ok {
		snap.Bouncing = id
	}
	for id := range b.state.Hidden {
		snap.HiddenCards = append(snap.HiddenCards, id)
	}
	sort.Strings(snap.HiddenCards)
	return snap
}
