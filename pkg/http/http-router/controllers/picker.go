package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/mentora-labs/campus-map/pkg/http/usecases"
	"github.com/mentora-labs/campus-map/pkg/view"

	"github.com/julienschmidt/httprouter"
)

// pointPayload model info
//
//	@Description	a latitude and longitude pair.
type pointPayload struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`   // latitude in degrees.
	Lon float64 `json:"lon" validate:"min=-180,max=180"` // longitude in degrees.
}

// pickerCreateRequest model info
//
//	@Description	request body for opening a meeting-point picker session.
type pickerCreateRequest struct {
	LatField string        `json:"lat_field" validate:"omitempty,max=64"` // form field receiving the latitude, defaults to "latitude".
	LngField string        `json:"lng_field" validate:"omitempty,max=64"` // form field receiving the longitude, defaults to "longitude".
	Initial  *pointPayload `json:"initial" validate:"omitempty"`          // pre-set meeting point when editing an existing request.
}

type pickerResponse struct {
	Data usecases.PickerResult `json:"data"` // session id, directives, and the chosen point if any.
}

// pickerCreate godoc
// @Summary		pickerCreate opens a meeting-point picker session, optionally pre-set with an existing point.
// @Description	pickerCreate opens a meeting-point picker session, optionally pre-set with an existing point.
// @Tags			picker
// @ID picker-create
// @Param			body	body	pickerCreateRequest	false	"picker options"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/picker [post]
// @Success		200	{object}	pickerResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) pickerCreate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request pickerCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil && !errors.Is(err, io.EOF) {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	opts := view.PickerOptions{
		LatField: request.LatField,
		LngField: request.LngField,
	}
	if request.Initial != nil {
		opts.Initial = &geo.Point{Lat: request.Initial.Lat, Lon: request.Initial.Lon}
	}

	result, err := api.sessionService.CreatePicker(r.Context(), opts)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// pickerView godoc
// @Summary		pickerView returns the current state of a picker session.
// @Description	pickerView returns the current state of a picker session.
// @Tags			picker
// @ID picker-view
// @Param			id	path	string	true	"session id"
// @Produce		application/json
// @Router			/api/picker/{id} [get]
// @Success		200	{object}	pickerResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) pickerView(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	result, err := api.sessionService.PickerView(r.Context(), id)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// pickerClickRequest model info
//
//	@Description	request body for one map click in a picker session.
type pickerClickRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`   // latitude of the click.
	Lon float64 `json:"lon" validate:"min=-180,max=180"` // longitude of the click.
}

// pickerClick godoc
// @Summary		pickerClick applies one map click: inside the boundary it places or relocates the meeting marker and fills the form fields, outside it only reports an error status.
// @Description	pickerClick applies one map click: inside the boundary it places or relocates the meeting marker and fills the form fields, outside it only reports an error status.
// @Tags			picker
// @ID picker-click
// @Param			id		path	string				true	"session id"
// @Param			body	body	pickerClickRequest	true	"click position"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/picker/{id}/click [post]
// @Success		200	{object}	pickerResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) pickerClick(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var request pickerClickRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	result, err := api.sessionService.PickerClick(r.Context(), id, geo.Point{Lat: request.Lat, Lon: request.Lon})
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// pickerEnd godoc
// @Summary		pickerEnd discards a picker session.
// @Description	pickerEnd discards a picker session.
// @Tags			picker
// @ID picker-end
// @Param			id	path	string	true	"session id"
// @Produce		application/json
// @Router			/api/picker/{id} [delete]
// @Success		200	{object}	pickerResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) pickerEnd(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := api.sessionService.EndPicker(r.Context(), id); err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
