// Package catalog holds the read-only display projection of in-person
// help requests shown on the campus map. Requests are produced by the
// main platform; this service never mutates them.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/mentora-labs/campus-map/pkg/geo"
)

// MarkerVariants are cycled in request order to color the map pins.
var MarkerVariants = []string{"teal", "emerald", "purple", "amber"}

const (
	DefaultSubject  = "General"
	DefaultLocation = "On-campus location"
)

type Owner struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Avatar   string `json:"avatar"`
}

type HelpRequest struct {
	ID         string    `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Subject    string    `json:"subject"`
	Urgency    string    `json:"urgency"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	Tags       []string  `json:"tags"`
	Point      geo.Point `json:"point"`
	TimeLabel  string    `json:"time,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	Credits    int       `json:"credits"`
	DetailURL  string    `json:"detail_url"`
	DistanceKM float64   `json:"distance_km"`
	Variant    string    `json:"variant"`
	Owner      Owner     `json:"author"`
}

// SearchText is the combined card text the browse filter matches
// against.
func (r HelpRequest) SearchText() string {
	parts := []string{r.Title, r.Subject, r.Location}
	parts = append(parts, r.Tags...)
	parts = append(parts, r.Owner.Name)
	return strings.Join(parts, " ")
}

// Matches reports whether the request's card survives the query. An
// empty query matches everything; otherwise a case-insensitive
// substring of the combined card text is required.
func (r HelpRequest) Matches(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.SearchText()), strings.ToLower(query))
}

// InitialsFromName mirrors how the platform renders avatar badges:
// first letters of the first two words, or the first two characters
// of a single-word name, uppercased.
func InitialsFromName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return strings.ToUpper(firstRunes(strings.TrimSpace(name), 2))
	case 1:
		return strings.ToUpper(firstRunes(parts[0], 2))
	default:
		return strings.ToUpper(firstRunes(parts[0], 1) + firstRunes(parts[1], 1))
	}
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// ParseTags splits a comma-separated tag string, dropping blanks.
func ParseTags(tagString string) []string {
	var tags []string
	for _, item := range strings.Split(tagString, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			tags = append(tags, item)
		}
	}
	return tags
}

// DistanceLabel renders the "how far" hint on request cards.
func DistanceLabel(km float64) string {
	return fmt.Sprintf("%.1f km away", km)
}

// ResolveDetailURL joins a site-relative detail path onto base, for
// deployments where the map is served from a different origin than
// the main platform. Absolute URLs and blank bases pass through.
func ResolveDetailURL(base, url string) string {
	if base == "" || !strings.HasPrefix(url, "/") {
		return url
	}
	return strings.TrimRight(base, "/") + url
}
