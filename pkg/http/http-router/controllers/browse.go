package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/mentora-labs/campus-map/pkg/http/usecases"

	"github.com/julienschmidt/httprouter"
)

type browseResponse struct {
	Data usecases.BrowseResult `json:"data"` // session id, directives, and the page snapshot.
}

// browseCreate godoc
// @Summary		browseCreate opens a map browsing session: viewport fitted to the campus, boundary drawn, one marker per request, first request active.
// @Description	browseCreate opens a map browsing session: viewport fitted to the campus, boundary drawn, one marker per request, first request active.
// @Tags			browse
// @ID browse-create
// @Produce		application/json
// @Router			/api/view [post]
// @Success		200	{object}	browseResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseCreate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := api.sessionService.CreateBrowse(r.Context())
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// browseView godoc
// @Summary		browseView returns the current snapshot of a browsing session without applying any event.
// @Description	browseView returns the current snapshot of a browsing session without applying any event.
// @Tags			browse
// @ID browse-view
// @Param			id	path	string	true	"session id"
// @Produce		application/json
// @Router			/api/view/{id} [get]
// @Success		200	{object}	browseResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseView(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	result, err := api.sessionService.BrowseView(r.Context(), id)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// activateRequest model info
//
//	@Description	request body for activating one help request on the page.
type activateRequest struct {
	RequestID string `json:"request_id" validate:"required,max=64"` // id of the request to activate.
	Pan       bool   `json:"pan"`                                   // pan the map to the marker.
	Bounce    bool   `json:"bounce"`                                // bounce the marker briefly.
}

// browseActivate godoc
// @Summary		browseActivate makes one request the single active one, optionally panning to and bouncing its marker.
// @Description	browseActivate makes one request the single active one, optionally panning to and bouncing its marker.
// @Tags			browse
// @ID browse-activate
// @Param			id		path	string			true	"session id"
// @Param			body	body	activateRequest	true	"activation options"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/view/{id}/activate [post]
// @Success		200	{object}	browseResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseActivate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var request activateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	result, err := api.sessionService.Activate(r.Context(), id, request.RequestID, request.Pan, request.Bounce)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// cardEventRequest model info
//
//	@Description	request body naming the help request a card or marker event targets.
type cardEventRequest struct {
	RequestID string `json:"request_id" validate:"required,max=64"` // id of the targeted request.
}

// browseHover godoc
// @Summary		browseHover previews a request from its card without panning or bouncing.
// @Description	browseHover previews a request from its card without panning or bouncing.
// @Tags			browse
// @ID browse-hover
// @Param			id		path	string				true	"session id"
// @Param			body	body	cardEventRequest	true	"hovered request"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/view/{id}/hover [post]
// @Success		200	{object}	browseResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseHover(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	api.cardEvent(w, r, ps, api.sessionService.Hover)
}

// browseCardClick godoc
// @Summary		browseCardClick activates a request from its card with pan and bounce; clicking the already-active card navigates to the request's detail page.
// @Description	browseCardClick activates a request from its card with pan and bounce; clicking the already-active card navigates to the request's detail page.
// @Tags			browse
// @ID browse-card-click
// @Param			id		path	string				true	"session id"
// @Param			body	body	cardEventRequest	true	"clicked request"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/view/{id}/card-click [post]
// @Success		200	{object}	browseResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseCardClick(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	api.cardEvent(w, r, ps, api.sessionService.CardClick)
}

// browseMarkerClick godoc
// @Summary		browseMarkerClick activates a request from its marker and opens its popup; the card highlights but is not scrolled to.
// @Description	browseMarkerClick activates a request from its marker and opens its popup; the card highlights but is not scrolled to.
// @Tags			browse
// @ID browse-marker-click
// @Param			id		path	string				true	"session id"
// @Param			body	body	cardEventRequest	true	"clicked marker"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/view/{id}/marker-click [post]
// @Success		200	{object}	browseResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseMarkerClick(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	api.cardEvent(w, r, ps, api.sessionService.MarkerClick)
}

func (api *mapAPI) cardEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params,
	apply func(ctx context.Context, id, requestID string) (usecases.BrowseResult, error)) {
	id := ps.ByName("id")

	var request cardEventRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	result, err := apply(r.Context(), id, request.RequestID)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// searchRequest model info
//
//	@Description	request body for filtering the card list.
type searchRequest struct {
	Query string `json:"query" validate:"max=120"` // substring to match against card text, empty restores all cards.
}

// browseSearch godoc
// @Summary		browseSearch filters the card list by a substring query; markers stay on the map regardless.
// @Description	browseSearch filters the card list by a substring query; markers stay on the map regardless.
// @Tags			browse
// @ID browse-search
// @Param			id		path	string			true	"session id"
// @Param			body	body	searchRequest	true	"filter query"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/view/{id}/search [post]
// @Success		200	{object}	browseResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseSearch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var request searchRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	result, err := api.sessionService.Search(r.Context(), id, request.Query)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// locateRequest model info
//
//	@Description	request body reporting the outcome of the page's geolocation attempt.
type locateRequest struct {
	Point *pointPayload `json:"point" validate:"omitempty"` // position the platform returned, absent when it failed.
	Error string        `json:"error" validate:"max=200"`   // platform error message when no position is available.
}

// browseLocate godoc
// @Summary		browseLocate shows the user's position: the reported point when available, else a coarse lookup on the client address, else an error status.
// @Description	browseLocate shows the user's position: the reported point when available, else a coarse lookup on the client address, else an error status.
// @Tags			browse
// @ID browse-locate
// @Param			id		path	string			true	"session id"
// @Param			body	body	locateRequest	true	"geolocation outcome"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/view/{id}/locate [post]
// @Success		200	{object}	browseResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseLocate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var request locateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	var point *geo.Point
	if request.Point != nil {
		point = &geo.Point{Lat: request.Point.Lat, Lon: request.Point.Lon}
	}

	result, err := api.sessionService.Locate(r.Context(), id, point, request.Error, r.RemoteAddr)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// browseEnd godoc
// @Summary		browseEnd discards a browsing session.
// @Description	browseEnd discards a browsing session.
// @Tags			browse
// @ID browse-end
// @Param			id	path	string	true	"session id"
// @Produce		application/json
// @Router			/api/view/{id} [delete]
// @Success		200	{object}	browseResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) browseEnd(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := api.sessionService.EndBrowse(r.Context(), id); err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
