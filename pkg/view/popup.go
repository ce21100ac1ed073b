package view

import (
	"html/template"
	"strings"
	"time"
	"unicode"

	"github.com/mentora-labs/campus-map/pkg"
	"github.com/mentora-labs/campus-map/pkg/catalog"
)

const popupMaxTags = 3

var popupTmpl = template.Must(template.New("popup").Parse(`<div class="map-popup">
	<div class="map-popup__header">
		{{if .Avatar}}<img class="map-popup__avatar" src="{{.Avatar}}" alt="{{.Initials}}">{{else}}<span class="map-popup__initials">{{.Initials}}</span>{{end}}
		<div class="map-popup__heading">
			<h4 class="map-popup__title">{{.Title}}</h4>
			<span class="map-popup__time">{{.TimeLabel}}</span>
		</div>
	</div>
	<div class="map-popup__meta">
		<span class="map-popup__subject">{{.Subject}}</span>
		{{if .Urgency}}<span class="map-popup__urgency map-popup__urgency--{{.UrgencyClass}}">{{.Urgency}}</span>{{end}}
	</div>
	<p class="map-popup__location">{{.Location}}</p>
	{{if .Tags}}<ul class="map-popup__tags">{{range .Tags}}<li>{{.}}</li>{{end}}</ul>{{end}}
	<a class="map-popup__action" href="{{.DetailURL}}">View request</a>
</div>`))

type popupData struct {
	Title        string
	TimeLabel    string
	Subject      string
	Urgency      string
	UrgencyClass string
	Location     string
	Tags         []string
	Avatar       string
	Initials     string
	DetailURL    string
}

// RenderPopup assembles the info-window fragment for one request.
// Every request field passes through html/template escaping, so
// user-supplied titles and avatar URLs render inert.
func RenderPopup(now time.Time, r catalog.HelpRequest) (string, error) {
	tags := r.Tags
	if len(tags) > popupMaxTags {
		tags = tags[:popupMaxTags]
	}

	data := popupData{
		Title:        r.Title,
		TimeLabel:    TimeLabelFor(now, r),
		Subject:      r.Subject,
		Urgency:      capitalize(r.Urgency),
		UrgencyClass: strings.ToLower(r.Urgency),
		Location:     r.Location,
		Tags:         tags,
		Avatar:       r.Owner.Avatar,
		Initials:     r.Owner.Initials,
		DetailURL:    r.DetailURL,
	}

	var sb strings.Builder
	if err := popupTmpl.Execute(&sb, data); err != nil {
		return "", pkg.WrapErrorf(err, pkg.ErrInternalServerError, "rendering popup for request %s", r.ID)
	}
	return sb.String(), nil
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
