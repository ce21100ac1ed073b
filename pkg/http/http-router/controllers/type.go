package controllers

import (
	"context"

	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/mentora-labs/campus-map/pkg/http/usecases"
	"github.com/mentora-labs/campus-map/pkg/spatial"
	"github.com/mentora-labs/campus-map/pkg/view"
)

type MapService interface {
	ScriptConfig() view.ScriptConfig
	CampusInfo() usecases.CampusInfo
	Contains(lat, lon float64) (bool, error)
	Requests(query string) []catalog.HelpRequest
	Nearby(lat, lon float64, k int) ([]spatial.Nearby, error)
	Popup(id string) (string, error)
}

type SessionService interface {
	CreatePicker(ctx context.Context, opts view.PickerOptions) (usecases.PickerResult, error)
	PickerView(ctx context.Context, id string) (usecases.PickerResult, error)
	PickerClick(ctx context.Context, id string, at geo.Point) (usecases.PickerResult, error)
	EndPicker(ctx context.Context, id string) error

	CreateBrowse(ctx context.Context) (usecases.BrowseResult, error)
	BrowseView(ctx context.Context, id string) (usecases.BrowseResult, error)
	Activate(ctx context.Context, id, requestID string, pan, bounce bool) (usecases.BrowseResult, error)
	Hover(ctx context.Context, id, requestID string) (usecases.BrowseResult, error)
	CardClick(ctx context.Context, id, requestID string) (usecases.BrowseResult, error)
	MarkerClick(ctx context.Context, id, requestID string) (usecases.BrowseResult, error)
	Search(ctx context.Context, id, query string) (usecases.BrowseResult, error)
	Locate(ctx context.Context, id string, p *geo.Point, platformErr, remoteAddr string) (usecases.BrowseResult, error)
	EndBrowse(ctx context.Context, id string) error
}
