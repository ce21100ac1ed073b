package view

import (
	"testing"

	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestPickerClick(t *testing.T) {
	cam := campus.Default()

	t.Run("click outside only sets the status line", func(t *testing.T) {
		rec := NewRecorder()
		p := NewPicker(cam, rec, rec, PickerOptions{})

		p.Click(geo.NewPoint(9.7408, 118.7566))

		assert.False(t, p.IsSet())
		ds := rec.Drain()
		assert.Equal(t, []string{OpSetStatus}, opsOf(ds))
		assert.Equal(t, string(LevelError), ds[0].Params["level"])
		assert.Equal(t, MsgOutsideBoundary, ds[0].Params["message"])
	})

	t.Run("click inside places the marker and writes both fields", func(t *testing.T) {
		rec := NewRecorder()
		p := NewPicker(cam, rec, rec, PickerOptions{})

		p.Click(geo.NewPoint(9.7745, 118.7310))

		assert.True(t, p.IsSet())
		ds := rec.Drain()
		assert.Equal(t, []string{
			OpPlaceMarker,
			OpSetField,
			OpSetField,
			OpSetStatus,
		}, opsOf(ds))

		assert.Equal(t, "meeting-point", ds[0].Params["id"])

		fields := filterOps(ds, OpSetField)
		assert.Equal(t, "latitude", fields[0].Params["name"])
		assert.Equal(t, "9.774500", fields[0].Params["value"])
		assert.Equal(t, "longitude", fields[1].Params["name"])
		assert.Equal(t, "118.731000", fields[1].Params["value"])

		assert.Equal(t, string(LevelSuccess), ds[3].Params["level"])
	})

	t.Run("second click relocates the same marker", func(t *testing.T) {
		rec := NewRecorder()
		p := NewPicker(cam, rec, rec, PickerOptions{})

		p.Click(geo.NewPoint(9.7745, 118.7310))
		rec.Drain()
		p.Click(geo.NewPoint(9.7720, 118.7300))

		ds := rec.Drain()
		markers := filterOps(ds, OpPlaceMarker)
		assert.Len(t, markers, 1)
		assert.Equal(t, "meeting-point", markers[0].Params["id"])
		assert.Equal(t, 9.7720, markers[0].Params["lat"])

		assert.Equal(t, geo.NewPoint(9.7720, 118.7300), *p.State().Chosen)
	})

	t.Run("outside click never touches a previously set point", func(t *testing.T) {
		rec := NewRecorder()
		p := NewPicker(cam, rec, rec, PickerOptions{})

		chosen := geo.NewPoint(9.7745, 118.7310)
		p.Click(chosen)
		rec.Drain()

		p.Click(geo.NewPoint(9.7408, 118.7566))

		ds := rec.Drain()
		assert.NotContains(t, opsOf(ds), OpSetField)
		assert.NotContains(t, opsOf(ds), OpPlaceMarker)
		assert.Equal(t, chosen, *p.State().Chosen)
	})

	t.Run("custom field names", func(t *testing.T) {
		rec := NewRecorder()
		p := NewPicker(cam, rec, rec, PickerOptions{
			LatField: "meeting_lat",
			LngField: "meeting_lng",
		})

		p.Click(geo.NewPoint(9.7745, 118.7310))

		fields := filterOps(rec.Drain(), OpSetField)
		assert.Equal(t, "meeting_lat", fields[0].Params["name"])
		assert.Equal(t, "meeting_lng", fields[1].Params["name"])
	})
}

func TestPickerEditMode(t *testing.T) {
	cam := campus.Default()
	rec := NewRecorder()
	initial := geo.NewPoint(9.7750, 118.7320)

	p := NewPicker(cam, rec, rec, PickerOptions{Initial: &initial})

	assert.True(t, p.IsSet())
	ds := rec.Drain()
	ops := opsOf(ds)
	assert.Contains(t, ops, OpPlaceMarker)
	assert.Contains(t, ops, OpPanTo)
	assert.NotContains(t, ops, OpSetStatus)

	fields := filterOps(ds, OpSetField)
	assert.Equal(t, "9.775000", fields[0].Params["value"])
	assert.Equal(t, "118.732000", fields[1].Params["value"])
}

func TestRestorePicker(t *testing.T) {
	cam := campus.Default()
	rec := NewRecorder()
	p := NewPicker(cam, rec, rec, PickerOptions{})
	p.Click(geo.NewPoint(9.7745, 118.7310))

	rec2 := NewRecorder()
	p2 := RestorePicker(p.State(), cam, rec2, rec2)

	assert.True(t, p2.IsSet())
	p2.Click(geo.NewPoint(9.7720, 118.7300))
	assert.Equal(t, 9.7720, p2.State().Chosen.Lat)
}
