package catalog

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mentora-labs/campus-map/pkg"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"go.uber.org/zap"
)

type payload struct {
	Requests []requestPayload `json:"requests"`
}

// requestPayload is one entry of the export the main platform
// produces. Tags may arrive as a list or as the raw comma string
// stored on the problem row.
type requestPayload struct {
	ID        json.Number     `json:"id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Subject   string          `json:"subject"`
	Urgency   string          `json:"urgency"`
	Status    string          `json:"status"`
	Location  string          `json:"location"`
	Tags      json.RawMessage `json:"tags"`
	Lat       *float64        `json:"lat"`
	Lng       *float64        `json:"lng"`
	Time      string          `json:"time"`
	CreatedAt string          `json:"created_at"`
	Credits   int             `json:"credits"`
	DetailURL string          `json:"detail_url"`
	Author    authorPayload   `json:"author"`
}

type authorPayload struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Initials string `json:"initials"`
}

type Options struct {
	// Center, when set, is used to precompute each request's
	// distance label.
	Center *geo.Point
	// DetailBase absolutizes site-relative detail URLs.
	DetailBase string
}

// Load decodes a help-request export. Entries without finite numeric
// coordinates are dropped with a debug log; everything else is kept,
// so one bad row never hides the rest of the map.
func Load(log *zap.Logger, data []byte, opts Options) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var doc payload
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "parsing help-request export")
	}

	requests := make([]HelpRequest, 0, len(doc.Requests))
	for i, entry := range doc.Requests {
		id := entry.ID.String()
		if id == "" {
			log.Debug("skipping request entry without id", zap.Int("index", i))
			continue
		}
		if entry.Lat == nil || entry.Lng == nil {
			log.Debug("skipping request without coordinates", zap.String("id", id))
			continue
		}
		point := geo.NewPoint(*entry.Lat, *entry.Lng)
		if !point.IsFinite() {
			log.Debug("skipping request with non-finite coordinates", zap.String("id", id))
			continue
		}

		req := HelpRequest{
			ID:        id,
			Slug:      entry.Slug,
			Title:     entry.Title,
			Subject:   entry.Subject,
			Urgency:   entry.Urgency,
			Status:    entry.Status,
			Location:  entry.Location,
			Tags:      decodeTags(entry.Tags),
			Point:     point,
			TimeLabel: entry.Time,
			Credits:   entry.Credits,
			DetailURL: entry.DetailURL,
			Variant:   MarkerVariants[len(requests)%len(MarkerVariants)],
			Owner: Owner{
				Name:     entry.Author.Name,
				Avatar:   entry.Author.Avatar,
				Initials: entry.Author.Initials,
			},
		}
		if req.Subject == "" {
			req.Subject = DefaultSubject
		}
		if req.Location == "" {
			req.Location = DefaultLocation
		}
		if len(req.Tags) == 0 {
			req.Tags = []string{DefaultSubject}
		}
		if req.Owner.Initials == "" {
			req.Owner.Initials = InitialsFromName(req.Owner.Name)
		}
		if req.DetailURL == "" && req.Slug != "" {
			req.DetailURL = "/problems/" + req.Slug + "/"
		}
		req.DetailURL = ResolveDetailURL(opts.DetailBase, req.DetailURL)
		if entry.CreatedAt != "" {
			if ts, err := time.Parse(time.RFC3339, entry.CreatedAt); err == nil {
				req.CreatedAt = ts
			} else {
				log.Debug("request has unparseable created_at",
					zap.String("id", id), zap.String("created_at", entry.CreatedAt))
			}
		}
		if opts.Center != nil {
			req.DistanceKM = geo.HaversineDistance(
				opts.Center.Lat, opts.Center.Lon, point.Lat, point.Lon)
		}

		requests = append(requests, req)
	}

	return New(requests), nil
}

func LoadFile(log *zap.Logger, path string, opts Options) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "reading help-request export %s", path)
	}
	return Load(log, data, opts)
}

func decodeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		var tags []string
		for _, item := range list {
			for _, parsed := range ParseTags(item) {
				tags = append(tags, parsed)
			}
		}
		return tags
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		return ParseTags(joined)
	}
	return nil
}
