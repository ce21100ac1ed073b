package view

import (
	"strings"
	"testing"
	"time"

	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestRenderPopup(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	base := catalog.HelpRequest{
		ID:        "7",
		Title:     "Need help with derivatives",
		Subject:   "Mathematics",
		Urgency:   "high",
		Location:  "Engineering building",
		Tags:      []string{"calculus", "derivatives"},
		TimeLabel: "3 hours ago",
		DetailURL: "/problems/calculus-derivatives/",
		Owner:     catalog.Owner{Name: "Ana Reyes", Initials: "AR"},
	}

	t.Run("assembles the fragment", func(t *testing.T) {
		html, err := RenderPopup(now, base)
		assert.Nil(t, err)
		assert.Contains(t, html, "Need help with derivatives")
		assert.Contains(t, html, "3 hours ago")
		assert.Contains(t, html, "Mathematics")
		assert.Contains(t, html, ">High<")
		assert.Contains(t, html, "map-popup__urgency--high")
		assert.Contains(t, html, "Engineering building")
		assert.Contains(t, html, "<li>calculus</li>")
		assert.Contains(t, html, `href="/problems/calculus-derivatives/"`)
	})

	t.Run("initials badge without an avatar", func(t *testing.T) {
		html, err := RenderPopup(now, base)
		assert.Nil(t, err)
		assert.Contains(t, html, `<span class="map-popup__initials">AR</span>`)
		assert.NotContains(t, html, "<img")
	})

	t.Run("avatar image when present", func(t *testing.T) {
		r := base
		r.Owner.Avatar = "/media/avatars/ana.png"
		html, err := RenderPopup(now, r)
		assert.Nil(t, err)
		assert.Contains(t, html, `src="/media/avatars/ana.png"`)
		assert.NotContains(t, html, "map-popup__initials")
	})

	t.Run("script in the title renders inert", func(t *testing.T) {
		r := base
		r.Title = `<script>alert("x")</script>`
		html, err := RenderPopup(now, r)
		assert.Nil(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("javascript avatar url is neutralized", func(t *testing.T) {
		r := base
		r.Owner.Avatar = "javascript:alert(1)"
		html, err := RenderPopup(now, r)
		assert.Nil(t, err)
		assert.NotContains(t, html, `src="javascript:`)
	})

	t.Run("at most three tags", func(t *testing.T) {
		r := base
		r.Tags = []string{"one", "two", "three", "four", "five"}
		html, err := RenderPopup(now, r)
		assert.Nil(t, err)
		assert.Equal(t, 3, strings.Count(html, "<li>"))
		assert.NotContains(t, html, "<li>four</li>")
	})

	t.Run("empty urgency hides the badge", func(t *testing.T) {
		r := base
		r.Urgency = ""
		html, err := RenderPopup(now, r)
		assert.Nil(t, err)
		assert.NotContains(t, html, "map-popup__urgency")
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "High", capitalize("high"))
	assert.Equal(t, "Medium", capitalize("medium"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Low", capitalize("Low"))
}
