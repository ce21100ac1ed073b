package usecases

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/mentora-labs/campus-map/pkg"
	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/mentora-labs/campus-map/pkg/metrics"
	"github.com/mentora-labs/campus-map/pkg/view"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

const (
	pickerKeyPrefix = "picker:"
	browseKeyPrefix = "browse:"

	defaultSessionTTL = 30 * time.Minute

	lockStripes = 64
)

// SessionService runs the picker and browse state machines over a
// session store. Every event loads the session state, replays it into
// a fresh view bound to a recorder, applies the event, saves the state
// back, and returns the recorded directives. Events on the same
// session are serialized by a striped lock.
type SessionService struct {
	log     *zap.Logger
	campus  *campus.Campus
	catalog *catalog.Catalog
	store   SessionStore
	locator Locator
	ttl     time.Duration
	now     func() time.Time

	locks [lockStripes]sync.Mutex
}

func NewSessionService(log *zap.Logger, cam *campus.Campus, cat *catalog.Catalog,
	store SessionStore, locator Locator, ttl time.Duration, now func() time.Time) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &SessionService{
		log:     log,
		campus:  cam,
		catalog: cat,
		store:   store,
		locator: locator,
		ttl:     ttl,
		now:     now,
	}
}

func (s *SessionService) lock(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &s.locks[h.Sum32()%lockStripes]
}

type PickerResult struct {
	SessionID  string           `json:"session_id"`
	Directives []view.Directive `json:"directives"`
	Chosen     *geo.Point       `json:"chosen,omitempty"`
}

type BrowseResult struct {
	SessionID  string              `json:"session_id"`
	Directives []view.Directive    `json:"directives"`
	Snapshot   view.BrowseSnapshot `json:"snapshot"`
}

func (s *SessionService) CreatePicker(ctx context.Context, opts view.PickerOptions) (PickerResult, error) {
	if opts.Initial != nil && !opts.Initial.IsFinite() {
		return PickerResult{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "initial point must be finite")
	}

	id := uuid.NewString()
	rec := view.NewRecorder()
	p := view.NewPicker(s.campus, rec, rec, opts)
	if err := s.savePicker(ctx, id, p.State()); err != nil {
		return PickerResult{}, err
	}
	metrics.SessionsCreatedTotal.WithLabelValues("picker").Inc()
	s.log.Info("picker session created", zap.String("session", id))
	return s.pickerResult(id, p, rec), nil
}

func (s *SessionService) PickerView(ctx context.Context, id string) (PickerResult, error) {
	state, err := s.loadPicker(ctx, id)
	if err != nil {
		return PickerResult{}, err
	}
	return PickerResult{SessionID: id, Chosen: state.Chosen}, nil
}

func (s *SessionService) PickerClick(ctx context.Context, id string, at geo.Point) (PickerResult, error) {
	if !at.IsFinite() {
		return PickerResult{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "click point must be finite")
	}

	mu := s.lock(pickerKeyPrefix + id)
	mu.Lock()
	defer mu.Unlock()

	state, err := s.loadPicker(ctx, id)
	if err != nil {
		return PickerResult{}, err
	}

	if s.campus.Contains(at) {
		metrics.BoundaryChecksTotal.WithLabelValues("inside").Inc()
	} else {
		metrics.BoundaryChecksTotal.WithLabelValues("outside").Inc()
	}

	rec := view.NewRecorder()
	p := view.RestorePicker(state, s.campus, rec, rec)
	p.Click(at)
	if err := s.savePicker(ctx, id, p.State()); err != nil {
		return PickerResult{}, err
	}
	return s.pickerResult(id, p, rec), nil
}

func (s *SessionService) EndPicker(ctx context.Context, id string) error {
	return s.store.Delete(ctx, pickerKeyPrefix+id)
}

func (s *SessionService) CreateBrowse(ctx context.Context) (BrowseResult, error) {
	id := uuid.NewString()
	rec := view.NewRecorder()
	b := view.NewBrowse(s.catalog, s.campus, rec, rec, s.now)
	if err := s.saveBrowse(ctx, id, b.State()); err != nil {
		return BrowseResult{}, err
	}
	metrics.SessionsCreatedTotal.WithLabelValues("browse").Inc()
	s.log.Info("browse session created", zap.String("session", id),
		zap.Int("markers", s.catalog.Len()))
	return s.browseResult(id, b, rec), nil
}

func (s *SessionService) BrowseView(ctx context.Context, id string) (BrowseResult, error) {
	state, err := s.loadBrowse(ctx, id)
	if err != nil {
		return BrowseResult{}, err
	}
	rec := view.NewRecorder()
	b := view.RestoreBrowse(state, s.catalog, s.campus, rec, rec, s.now)
	return BrowseResult{SessionID: id, Snapshot: b.Snapshot(s.now())}, nil
}

func (s *SessionService) Activate(ctx context.Context, id, requestID string, pan, bounce bool) (BrowseResult, error) {
	return s.withBrowse(ctx, id, func(b *view.Browse) error {
		return b.Activate(requestID, view.ActivateOptions{Pan: pan, Bounce: bounce})
	})
}

func (s *SessionService) Hover(ctx context.Context, id, requestID string) (BrowseResult, error) {
	return s.withBrowse(ctx, id, func(b *view.Browse) error {
		return b.HoverCard(requestID)
	})
}

func (s *SessionService) CardClick(ctx context.Context, id, requestID string) (BrowseResult, error) {
	return s.withBrowse(ctx, id, func(b *view.Browse) error {
		return b.ClickCard(requestID)
	})
}

func (s *SessionService) MarkerClick(ctx context.Context, id, requestID string) (BrowseResult, error) {
	return s.withBrowse(ctx, id, func(b *view.Browse) error {
		return b.ClickMarker(requestID)
	})
}

func (s *SessionService) Search(ctx context.Context, id, query string) (BrowseResult, error) {
	return s.withBrowse(ctx, id, func(b *view.Browse) error {
		b.Search(query)
		metrics.SearchQueriesTotal.Inc()
		return nil
	})
}

// Locate prefers the point the page obtained from the platform, falls
// back to a coarse lookup on the client address, and reports failure
// only when both are unavailable.
func (s *SessionService) Locate(ctx context.Context, id string, p *geo.Point, platformErr, remoteAddr string) (BrowseResult, error) {
	return s.withBrowse(ctx, id, func(b *view.Browse) error {
		if p != nil && p.IsFinite() {
			b.Locate(p, false, "")
			metrics.LocateResultsTotal.WithLabelValues("precise").Inc()
			return nil
		}
		if s.locator != nil && s.locator.Enabled() {
			if approx := s.locator.Resolve(remoteAddr); approx != nil {
				b.Locate(approx, true, "")
				metrics.LocateResultsTotal.WithLabelValues("approximate").Inc()
				return nil
			}
		}
		b.Locate(nil, false, platformErr)
		metrics.LocateResultsTotal.WithLabelValues("failed").Inc()
		return nil
	})
}

func (s *SessionService) EndBrowse(ctx context.Context, id string) error {
	return s.store.Delete(ctx, browseKeyPrefix+id)
}

func (s *SessionService) withBrowse(ctx context.Context, id string, fn func(b *view.Browse) error) (BrowseResult, error) {
	mu := s.lock(browseKeyPrefix + id)
	mu.Lock()
	defer mu.Unlock()

	state, err := s.loadBrowse(ctx, id)
	if err != nil {
		return BrowseResult{}, err
	}
	rec := view.NewRecorder()
	b := view.RestoreBrowse(state, s.catalog, s.campus, rec, rec, s.now)
	if err := fn(b); err != nil {
		return BrowseResult{}, err
	}
	if err := s.saveBrowse(ctx, id, b.State()); err != nil {
		return BrowseResult{}, err
	}
	return s.browseResult(id, b, rec), nil
}

func (s *SessionService) pickerResult(id string, p *view.Picker, rec *view.Recorder) PickerResult {
	directives := rec.Drain()
	observeOps(directives)
	return PickerResult{
		SessionID:  id,
		Directives: directives,
		Chosen:     p.State().Chosen,
	}
}

func (s *SessionService) browseResult(id string, b *view.Browse, rec *view.Recorder) BrowseResult {
	directives := rec.Drain()
	observeOps(directives)
	return BrowseResult{
		SessionID:  id,
		Directives: directives,
		Snapshot:   b.Snapshot(s.now()),
	}
}

func (s *SessionService) savePicker(ctx context.Context, id string, state *view.PickerState) error {
	blob, err := msgpack.Marshal(state)
	if err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "encode picker state")
	}
	return s.store.Put(ctx, pickerKeyPrefix+id, blob, s.ttl)
}

func (s *SessionService) loadPicker(ctx context.Context, id string) (*view.PickerState, error) {
	blob, err := s.store.Get(ctx, pickerKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	var state view.PickerState
	if err := msgpack.Unmarshal(blob, &state); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "decode picker state")
	}
	return &state, nil
}

func (s *SessionService) saveBrowse(ctx context.Context, id string, state *view.BrowseState) error {
	blob, err := msgpack.Marshal(state)
	if err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "encode browse state")
	}
	return s.store.Put(ctx, browseKeyPrefix+id, blob, s.ttl)
}

func (s *SessionService) loadBrowse(ctx context.Context, id string) (*view.BrowseState, error) {
	blob, err := s.store.Get(ctx, browseKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	var state view.BrowseState
	if err := msgpack.Unmarshal(blob, &state); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "decode browse state")
	}
	return &state, nil
}

func observeOps(directives []view.Directive) {
	ops := make([]string, 0, len(directives))
	for _, d := range directives {
		ops = append(ops, d.Op)
	}
	metrics.ObserveDirectives(ops)
}
