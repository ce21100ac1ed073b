package usecases

import (
	"time"

	"github.com/mentora-labs/campus-map/pkg"
	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/mentora-labs/campus-map/pkg/metrics"
	"github.com/mentora-labs/campus-map/pkg/spatial"
	"github.com/mentora-labs/campus-map/pkg/view"

	"go.uber.org/zap"
)

// MapService answers the stateless map queries: provider bootstrap,
// boundary geometry and containment, and catalog reads.
type MapService struct {
	log     *zap.Logger
	campus  *campus.Campus
	catalog *catalog.Catalog
	index   NearbyIndex
	loader  *view.Loader
	now     func() time.Time
}

func NewMapService(log *zap.Logger, cam *campus.Campus, cat *catalog.Catalog,
	index NearbyIndex, loader *view.Loader, now func() time.Time) *MapService {
	if now == nil {
		now = time.Now
	}
	return &MapService{
		log:     log,
		campus:  cam,
		catalog: cat,
		index:   index,
		loader:  loader,
		now:     now,
	}
}

type CampusInfo struct {
	Name   string      `json:"name"`
	Center geo.Point   `json:"center"`
	Ring   []geo.Point `json:"ring"`
}

func (s *MapService) ScriptConfig() view.ScriptConfig {
	return s.loader.Config()
}

func (s *MapService) CampusInfo() CampusInfo {
	return CampusInfo{
		Name:   s.campus.Name(),
		Center: s.campus.Center(),
		Ring:   s.campus.Ring(),
	}
}

func (s *MapService) Contains(lat, lon float64) (bool, error) {
	p := geo.NewPoint(lat, lon)
	if !p.IsFinite() {
		return false, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "coordinates must be finite")
	}
	inside := s.campus.Contains(p)
	if inside {
		metrics.BoundaryChecksTotal.WithLabelValues("inside").Inc()
	} else {
		metrics.BoundaryChecksTotal.WithLabelValues("outside").Inc()
	}
	return inside, nil
}

// Requests returns the catalog entries matching the query, in catalog
// order, with time labels refreshed against the clock.
func (s *MapService) Requests(query string) []catalog.HelpRequest {
	matched := s.catalog.Filter(query)
	now := s.now()
	out := make([]catalog.HelpRequest, 0, len(matched))
	for _, r := range matched {
		r.TimeLabel = freshLabel(now, r)
		out = append(out, r)
	}
	return out
}

func (s *MapService) Nearby(lat, lon float64, k int) ([]spatial.Nearby, error) {
	p := geo.NewPoint(lat, lon)
	if !p.IsFinite() {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "coordinates must be finite")
	}

	start := time.Now()
	results := s.index.Nearest(p, k)
	metrics.NearbyQueriesTotal.Inc()
	metrics.NearbyDurationMs.Observe(float64(time.Since(start).Milliseconds()))

	now := s.now()
	for i := range results {
		results[i].Request.TimeLabel = freshLabel(now, results[i].Request)
	}
	return results, nil
}

func (s *MapService) Popup(id string) (string, error) {
	req, err := s.catalog.ByID(id)
	if err != nil {
		return "", err
	}
	html, err := view.RenderPopup(s.now(), req)
	if err != nil {
		return "", pkg.WrapErrorf(err, pkg.ErrInternalServerError, "render popup for request %s", id)
	}
	metrics.PopupRendersTotal.Inc()
	return html, nil
}

// freshLabel recomputes relative labels when the created time is
// known; literal labels from the platform survive as-is.
func freshLabel(now time.Time, r catalog.HelpRequest) string {
	if !r.CreatedAt.IsZero() {
		return view.RelativeLabel(now, r.CreatedAt)
	}
	return view.TimeLabelFor(now, r)
}
