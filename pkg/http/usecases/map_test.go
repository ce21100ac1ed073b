package usecases

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mentora-labs/campus-map/pkg"
	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/mentora-labs/campus-map/pkg/spatial"
	"github.com/mentora-labs/campus-map/pkg/view"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
}

func testRequests() []catalog.HelpRequest {
	return []catalog.HelpRequest{
		{
			ID: "1", Title: "Physics lab report", Subject: "Physics",
			Location: "Science hall", Tags: []string{"mechanics"},
			Point: geo.NewPoint(9.7745, 118.7310), Variant: "teal",
			DetailURL: "/problems/physics-lab-report/",
			CreatedAt: fixedNow().Add(-30 * time.Minute),
			Owner:     catalog.Owner{Name: "Ana Reyes", Initials: "AR"},
		},
		{
			ID: "2", Title: "Calculus derivatives", Subject: "Mathematics",
			Location: "Library", Tags: []string{"calculus"},
			Point: geo.NewPoint(9.7720, 118.7300), Variant: "emerald",
			DetailURL: "/problems/calculus-derivatives/",
			TimeLabel: "2 hours ago",
			Owner:     catalog.Owner{Name: "Jomar", Initials: "JO"},
		},
		{
			ID: "3", Title: "Essay review", Subject: "English",
			Location: "Humanities wing", Tags: []string{"writing"},
			Point: geo.NewPoint(9.7770, 118.7330), Variant: "purple",
			DetailURL: "/problems/essay-review/",
			Owner:     catalog.Owner{Name: "Maria Clara", Initials: "MC"},
		},
	}
}

func newMapFixture(t *testing.T, apiKey string) *MapService {
	t.Helper()
	cam := campus.Default()
	cat := catalog.New(testRequests())
	return NewMapService(zap.NewNop(), cam, cat, spatial.NewIndex(cat),
		view.NewLoader(zap.NewNop(), apiKey), fixedNow)
}

func assertCode(t *testing.T, err error, code error) {
	t.Helper()
	var appErr *pkg.Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, code, appErr.Code())
}

func TestScriptConfig(t *testing.T) {
	t.Run("with a key the script url is built", func(t *testing.T) {
		cfg := newMapFixture(t, "test-key").ScriptConfig()
		assert.True(t, cfg.Enabled)
		assert.Contains(t, cfg.ScriptURL, "key=test-key")
		assert.NotEmpty(t, cfg.Callback)
	})

	t.Run("without a key the feature reports disabled", func(t *testing.T) {
		cfg := newMapFixture(t, "").ScriptConfig()
		assert.False(t, cfg.Enabled)
		assert.Empty(t, cfg.ScriptURL)
	})
}

func TestCampusInfo(t *testing.T) {
	info := newMapFixture(t, "").CampusInfo()
	assert.Equal(t, campus.DefaultName, info.Name)
	assert.GreaterOrEqual(t, len(info.Ring), 4)
	assert.Equal(t, info.Ring[0], info.Ring[len(info.Ring)-1])
	assert.InDelta(t, 9.77, info.Center.Lat, 0.02)
}

func TestContains(t *testing.T) {
	svc := newMapFixture(t, "")

	t.Run("inside", func(t *testing.T) {
		inside, err := svc.Contains(9.7745, 118.7310)
		assert.Nil(t, err)
		assert.True(t, inside)
	})

	t.Run("outside", func(t *testing.T) {
		inside, err := svc.Contains(9.8000, 118.8000)
		assert.Nil(t, err)
		assert.False(t, inside)
	})

	t.Run("non-finite coordinates are rejected", func(t *testing.T) {
		_, err := svc.Contains(math.NaN(), 118.7310)
		assertCode(t, err, pkg.ErrBadParamInput)
	})
}

func TestRequests(t *testing.T) {
	svc := newMapFixture(t, "")

	t.Run("empty query returns everything in catalog order", func(t *testing.T) {
		got := svc.Requests("")
		assert.Len(t, got, 3)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[2].ID)
	})

	t.Run("query filters with substring semantics", func(t *testing.T) {
		got := svc.Requests("physics")
		assert.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("relative labels are recomputed from created_at", func(t *testing.T) {
		got := svc.Requests("physics")
		assert.Equal(t, "30 minutes ago", got[0].TimeLabel)
	})

	t.Run("literal platform labels survive", func(t *testing.T) {
		got := svc.Requests("calculus")
		assert.Equal(t, "2 hours ago", got[0].TimeLabel)
	})

	t.Run("neither source falls back to the generic label", func(t *testing.T) {
		got := svc.Requests("essay")
		assert.Equal(t, "Posted recently", got[0].TimeLabel)
	})
}

func TestNearby(t *testing.T) {
	svc := newMapFixture(t, "")

	t.Run("orders by distance from the query point", func(t *testing.T) {
		got, err := svc.Nearby(9.7720, 118.7300, 3)
		assert.Nil(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, "2", got[0].Request.ID)
		assert.InDelta(t, 0, got[0].DistanceKM, 1e-9)
		assert.LessOrEqual(t, got[0].DistanceKM, got[1].DistanceKM)
		assert.LessOrEqual(t, got[1].DistanceKM, got[2].DistanceKM)
	})

	t.Run("k caps the result count", func(t *testing.T) {
		got, err := svc.Nearby(9.7720, 118.7300, 1)
		assert.Nil(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("non-finite coordinates are rejected", func(t *testing.T) {
		_, err := svc.Nearby(9.7720, math.Inf(1), 3)
		assertCode(t, err, pkg.ErrBadParamInput)
	})
}

func TestPopup(t *testing.T) {
	svc := newMapFixture(t, "")

	t.Run("renders the request fragment", func(t *testing.T) {
		html, err := svc.Popup("1")
		assert.Nil(t, err)
		assert.Contains(t, html, "Physics lab report")
		assert.Contains(t, html, "30 minutes ago")
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		_, err := svc.Popup("99")
		assertCode(t, err, pkg.ErrNotFound)
	})
}
