package view

import (
	"testing"
	"time"

	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func opsOf(ds []Directive) []string {
	ops := make([]string, len(ds))
	for i, d := range ds {
		ops[i] = d.Op
	}
	return ops
}

func filterOps(ds []Directive, op string) []Directive {
	var out []Directive
	for _, d := range ds {
		if d.Op == op {
			out = append(out, d)
		}
	}
	return out
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
}

func browseFixture(t *testing.T) (*catalog.Catalog, *campus.Campus) {
	t.Helper()
	cam := campus.Default()
	cat := catalog.New([]catalog.HelpRequest{
		{
			ID: "1", Title: "Physics lab report", Subject: "Physics",
			Location: "Science hall", Tags: []string{"mechanics"},
			Point: geo.NewPoint(9.7745, 118.7310), Variant: "teal",
			DetailURL: "/problems/physics-lab-report/",
			Owner:     catalog.Owner{Name: "Ana Reyes", Initials: "AR"},
		},
		{
			ID: "2", Title: "Calculus derivatives", Subject: "Mathematics",
			Location: "Library", Tags: []string{"calculus"},
			Point: geo.NewPoint(9.7720, 118.7300), Variant: "emerald",
			DetailURL: "/problems/calculus-derivatives/",
			Owner:     catalog.Owner{Name: "Jomar", Initials: "JO"},
		},
		{
			ID: "3", Title: "Essay review", Subject: "English",
			Location: "Humanities wing", Tags: []string{"writing"},
			Point: geo.NewPoint(9.7770, 118.7330), Variant: "purple",
			DetailURL: "/problems/essay-review/",
			Owner:     catalog.Owner{Name: "Maria Clara", Initials: "MC"},
		},
	})
	return cat, cam
}

func TestNewBrowseInit(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)

	ds := rec.Drain()
	assert.Equal(t, []string{
		OpFitBounds,
		OpDrawBoundary,
		OpPlaceMarker,
		OpPlaceMarker,
		OpPlaceMarker,
		OpSetActiveCard,
		OpScrollCard,
	}, opsOf(ds))

	assert.Equal(t, "1", b.State().ActiveID)
	assert.Len(t, b.State().Markers, 3)
	assert.Equal(t, "teal", b.State().Markers[0].Variant)

	t.Run("empty catalog draws the map with no activation", func(t *testing.T) {
		rec := NewRecorder()
		b := NewBrowse(catalog.New(nil), cam, rec, rec, fixedNow)
		ops := opsOf(rec.Drain())
		assert.Equal(t, []string{OpFitBounds, OpDrawBoundary}, ops)
		assert.Equal(t, "", b.State().ActiveID)
	})
}

func TestActivate(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)
	rec.Drain()

	t.Run("full activation pans, zooms and bounces", func(t *testing.T) {
		err := b.Activate("2", ActivateOptions{Pan: true, Bounce: true})
		assert.Nil(t, err)

		ds := rec.Drain()
		assert.Equal(t, []string{
			OpSetActiveCard,
			OpScrollCard,
			OpBounceMarker,
			OpPanTo,
			OpEnsureZoom,
		}, opsOf(ds))

		bounce := filterOps(ds, OpBounceMarker)[0]
		assert.Equal(t, "2", bounce.Params["id"])
		assert.Equal(t, int64(1400), bounce.Params["duration_ms"])
		assert.Equal(t, "2", b.State().ActiveID)
	})

	t.Run("activation from a marker suppresses the card scroll", func(t *testing.T) {
		err := b.Activate("3", ActivateOptions{FromMarker: true})
		assert.Nil(t, err)
		ops := opsOf(rec.Drain())
		assert.NotContains(t, ops, OpScrollCard)
		assert.Contains(t, ops, OpSetActiveCard)
	})

	t.Run("unknown id is rejected", func(t *testing.T) {
		err := b.Activate("99", ActivateOptions{})
		assert.NotNil(t, err)
		assert.Equal(t, "3", b.State().ActiveID)
	})

	t.Run("exactly one active across a random-ish sequence", func(t *testing.T) {
		seq := []string{"1", "3", "2", "2", "1", "3"}
		for _, id := range seq {
			assert.Nil(t, b.Activate(id, ActivateOptions{Bounce: true}))
			ds := rec.Drain()
			actives := filterOps(ds, OpSetActiveCard)
			assert.Len(t, actives, 1)
			assert.Equal(t, id, actives[0].Params["id"])
			assert.Equal(t, id, b.State().ActiveID)
		}
	})
}

func TestHoverCard(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)
	rec.Drain()

	assert.Nil(t, b.HoverCard("2"))
	ops := opsOf(rec.Drain())
	assert.Contains(t, ops, OpSetActiveCard)
	assert.NotContains(t, ops, OpPanTo)
	assert.NotContains(t, ops, OpBounceMarker)
}

func TestClickCard(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)
	rec.Drain()

	t.Run("first click activates", func(t *testing.T) {
		assert.Nil(t, b.ClickCard("2"))
		ops := opsOf(rec.Drain())
		assert.Contains(t, ops, OpSetActiveCard)
		assert.Contains(t, ops, OpPanTo)
		assert.Contains(t, ops, OpBounceMarker)
		assert.NotContains(t, ops, OpNavigate)
	})

	t.Run("second click on the active card navigates", func(t *testing.T) {
		assert.Nil(t, b.ClickCard("2"))
		ds := rec.Drain()
		navs := filterOps(ds, OpNavigate)
		assert.Len(t, navs, 1)
		assert.Equal(t, "/problems/calculus-derivatives/", navs[0].Params["url"])
		assert.NotContains(t, opsOf(ds), OpSetActiveCard)
	})
}

func TestClickMarker(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)
	rec.Drain()

	assert.Nil(t, b.ClickMarker("3"))
	ds := rec.Drain()
	ops := opsOf(ds)

	assert.Contains(t, ops, OpSetActiveCard)
	assert.NotContains(t, ops, OpScrollCard)
	assert.Contains(t, ops, OpBounceMarker)

	popups := filterOps(ds, OpOpenPopup)
	assert.Len(t, popups, 1)
	assert.Contains(t, popups[0].Params["html"], "Essay review")
	assert.Equal(t, "3", b.State().PopupID)

	t.Run("next activation closes the popup", func(t *testing.T) {
		assert.Nil(t, b.HoverCard("1"))
		ops := opsOf(rec.Drain())
		assert.Equal(t, OpClosePopup, ops[0])
		assert.Equal(t, "", b.State().PopupID)
	})

	t.Run("no close when no popup is open", func(t *testing.T) {
		assert.Nil(t, b.HoverCard("2"))
		assert.NotContains(t, opsOf(rec.Drain()), OpClosePopup)
	})
}

func TestSearch(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)
	rec.Drain()

	t.Run("hides non-matching cards, keeps markers", func(t *testing.T) {
		b.Search("physics")
		ds := rec.Drain()

		vis := filterOps(ds, OpSetCardVisible)
		assert.Len(t, vis, 3)
		byID := map[string]bool{}
		for _, d := range vis {
			byID[d.Params["id"].(string)] = d.Params["visible"].(bool)
		}
		assert.True(t, byID["1"])
		assert.False(t, byID["2"])
		assert.False(t, byID["3"])

		assert.NotContains(t, opsOf(ds), OpRemoveMarker)
		assert.Len(t, b.State().Markers, 3)
	})

	t.Run("matching by owner name", func(t *testing.T) {
		b.Search("jomar")
		ds := rec.Drain()
		for _, d := range filterOps(ds, OpSetCardVisible) {
			want := d.Params["id"] == "2"
			assert.Equal(t, want, d.Params["visible"])
		}
	})

	t.Run("empty query restores every card", func(t *testing.T) {
		b.Search("")
		ds := rec.Drain()
		for _, d := range filterOps(ds, OpSetCardVisible) {
			assert.True(t, d.Params["visible"].(bool))
		}
		assert.Empty(t, b.State().Hidden)
	})
}

func TestLocate(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)
	rec.Drain()

	t.Run("browser position places the you marker", func(t *testing.T) {
		p := geo.NewPoint(9.7750, 118.7320)
		b.Locate(&p, false, "")
		ds := rec.Drain()

		markers := filterOps(ds, OpPlaceMarker)
		assert.Len(t, markers, 1)
		assert.Equal(t, "you", markers[0].Params["id"])
		assert.Contains(t, opsOf(ds), OpPanTo)

		status := filterOps(ds, OpSetStatus)[0]
		assert.Equal(t, string(LevelSuccess), status.Params["level"])
		assert.Equal(t, MsgLocated, status.Params["message"])

		assert.NotNil(t, b.State().UserMarker)
		assert.Len(t, b.State().Markers, 3)
	})

	t.Run("approximate position mentions it", func(t *testing.T) {
		p := geo.NewPoint(9.7748, 118.7312)
		b.Locate(&p, true, "")
		status := filterOps(rec.Drain(), OpSetStatus)[0]
		assert.Equal(t, string(LevelInfo), status.Params["level"])
		assert.Equal(t, MsgLocatedApprox, status.Params["message"])
	})

	t.Run("platform error text is surfaced", func(t *testing.T) {
		b.Locate(nil, false, "User denied Geolocation")
		ds := rec.Drain()
		status := filterOps(ds, OpSetStatus)[0]
		assert.Equal(t, string(LevelError), status.Params["level"])
		assert.Equal(t, "User denied Geolocation", status.Params["message"])
		assert.NotContains(t, opsOf(ds), OpPlaceMarker)
	})

	t.Run("generic fallback without platform text", func(t *testing.T) {
		b.Locate(nil, false, "")
		status := filterOps(rec.Drain(), OpSetStatus)[0]
		assert.Equal(t, MsgLocateFailed, status.Params["message"])
	})
}

func TestBouncing(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)
	rec.Drain()

	_, ok := b.Bouncing(fixedNow())
	assert.False(t, ok)

	assert.Nil(t, b.Activate("2", ActivateOptions{Bounce: true}))

	id, ok := b.Bouncing(fixedNow().Add(time.Second))
	assert.True(t, ok)
	assert.Equal(t, "2", id)

	_, ok = b.Bouncing(fixedNow().Add(1500 * time.Millisecond))
	assert.False(t, ok)
}

func TestRestoreBrowse(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)
	rec.Drain()
	assert.Nil(t, b.ClickCard("2"))
	rec.Drain()

	// rebind the same state to fresh sinks, as the next request would
	rec2 := NewRecorder()
	b2 := RestoreBrowse(b.State(), cat, cam, rec2, rec2, fixedNow)

	assert.Nil(t, b2.ClickCard("2"))
	navs := filterOps(rec2.Drain(), OpNavigate)
	assert.Len(t, navs, 1)
}

func TestSnapshot(t *testing.T) {
	cat, cam := browseFixture(t)
	rec := NewRecorder()
	b := NewBrowse(cat, cam, rec, rec, fixedNow)

	b.Search("physics")
	p := geo.NewPoint(9.7750, 118.7320)
	b.Locate(&p, false, "")
	assert.Nil(t, b.ClickMarker("1"))

	snap := b.Snapshot(fixedNow().Add(time.Second))
	assert.Equal(t, "1", snap.ActiveID)
	assert.Equal(t, "1", snap.PopupID)
	assert.Equal(t, "physics", snap.Query)
	assert.Equal(t, []string{"2", "3"}, snap.HiddenCards)
	assert.NotNil(t, snap.UserMarker)
	assert.Equal(t, "1", snap.Bouncing)
	assert.Len(t, snap.Markers, 3)
}
