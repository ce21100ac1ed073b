package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mentora-labs/campus-map/pkg/catalog"
	helper "github.com/mentora-labs/campus-map/pkg/http/http-router/router-helper"
	"github.com/mentora-labs/campus-map/pkg/http/usecases"
	"github.com/mentora-labs/campus-map/pkg/spatial"
	"github.com/mentora-labs/campus-map/pkg/view"

	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

const defaultNearbyK = 5

type mapAPI struct {
	mapService     MapService
	sessionService SessionService
	log            *zap.Logger
}

func New(mapService MapService, sessionService SessionService, log *zap.Logger) *mapAPI {
	return &mapAPI{
		mapService:     mapService,
		sessionService: sessionService,
		log:            log,
	}
}

func (api *mapAPI) Routes(group *helper.RouteGroup) {
	group.GET("/map/config", api.mapConfig)
	group.GET("/campus", api.campusInfo)
	group.POST("/campus/contains", api.campusContains)
	group.GET("/requests", api.requests)
	group.GET("/requests/:id/popup", api.requestPopup)
	group.GET("/nearby", api.nearby)

	group.POST("/picker", api.pickerCreate)
	group.GET("/picker/:id", api.pickerView)
	group.POST("/picker/:id/click", api.pickerClick)
	group.DELETE("/picker/:id", api.pickerEnd)

	group.POST("/view", api.browseCreate)
	group.GET("/view/:id", api.browseView)
	group.POST("/view/:id/activate", api.browseActivate)
	group.POST("/view/:id/hover", api.browseHover)
	group.POST("/view/:id/card-click", api.browseCardClick)
	group.POST("/view/:id/marker-click", api.browseMarkerClick)
	group.POST("/view/:id/search", api.browseSearch)
	group.POST("/view/:id/locate", api.browseLocate)
	group.DELETE("/view/:id", api.browseEnd)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type mapConfigResponse struct {
	Data view.ScriptConfig `json:"data"` // provider script bootstrap for the page.
}

// mapConfig godoc
// @Summary		mapConfig returns the mapping provider bootstrap: script url and callback, or disabled when no key is configured.
// @Description	mapConfig returns the mapping provider bootstrap: script url and callback, or disabled when no key is configured.
// @Tags			map
// @ID map-config
// @Produce		application/json
// @Router			/api/map/config [get]
// @Success		200	{object}	mapConfigResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) mapConfig(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cfg := api.mapService.ScriptConfig()

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": cfg}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type campusResponse struct {
	Data usecases.CampusInfo `json:"data"` // campus name, center, and boundary ring.
}

// campusInfo godoc
// @Summary		campusInfo returns the campus boundary ring and center used to frame the map.
// @Description	campusInfo returns the campus boundary ring and center used to frame the map.
// @Tags			map
// @ID campus-info
// @Produce		application/json
// @Router			/api/campus [get]
// @Success		200	{object}	campusResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) campusInfo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	info := api.mapService.CampusInfo()

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": info}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// containsRequest model info
//
//	@Description	request body for a campus boundary containment check.
type containsRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`   // latitude of the point to test.
	Lon float64 `json:"lon" validate:"min=-180,max=180"` // longitude of the point to test.
}

type containsResponse struct {
	Data struct {
		Inside bool `json:"inside"` // whether the point lies inside the boundary.
	} `json:"data"`
}

// campusContains godoc
// @Summary		campusContains tests whether a point lies inside the campus boundary polygon.
// @Description	campusContains tests whether a point lies inside the campus boundary polygon.
// @Tags			map
// @ID campus-contains
// @Param			body	body	containsRequest	true	"point to test"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/campus/contains [post]
// @Success		200	{object}	containsResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) campusContains(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request containsRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	inside, err := api.mapService.Contains(request.Lat, request.Lon)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	var response containsResponse
	response.Data.Inside = inside

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": response.Data}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type requestsResponse struct {
	Data []catalog.HelpRequest `json:"data"` // help requests matching the query, in catalog order.
}

// requests godoc
// @Summary		requests lists the in-person help requests shown on the map, optionally filtered by a substring query.
// @Description	requests lists the in-person help requests shown on the map, optionally filtered by a substring query over title, subject, location, tags, and author.
// @Tags			map
// @ID requests
// @Param			q	query	string	false	"substring filter"
// @Produce		application/json
// @Router			/api/requests [get]
// @Success		200	{object}	requestsResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) requests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	results := api.mapService.Requests(query)

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type popupResponse struct {
	Data struct {
		HTML string `json:"html"` // escaped popup fragment for the request.
	} `json:"data"`
}

// requestPopup godoc
// @Summary		requestPopup renders the escaped popup fragment for one help request.
// @Description	requestPopup renders the escaped popup fragment for one help request.
// @Tags			map
// @ID request-popup
// @Param			id	path	string	true	"request id"
// @Produce		application/json
// @Router			/api/requests/{id}/popup [get]
// @Success		200	{object}	popupResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) requestPopup(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	html, err := api.mapService.Popup(id)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	var response popupResponse
	response.Data.HTML = html

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": response.Data}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// nearbyRequest model info
//
//	@Description	query parameters for a nearest-requests lookup.
type nearbyRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`      // latitude of the origin point.
	Lon float64 `json:"lon" validate:"min=-180,max=180"`    // longitude of the origin point.
	K   int     `json:"k" validate:"required,min=1,max=50"` // how many requests to return.
}

type nearbyResponse struct {
	Data []spatial.Nearby `json:"data"` // nearest requests ordered by distance.
}

// nearby godoc
// @Summary		nearby returns the k help requests closest to a point, ordered by great-circle distance.
// @Description	nearby returns the k help requests closest to a point, ordered by great-circle distance.
// @Tags			map
// @ID nearby
// @Param			lat	query	number	true	"origin latitude"
// @Param			lon	query	number	true	"origin longitude"
// @Param			k	query	integer	false	"result count, default 5"
// @Produce		application/json
// @Router			/api/nearby [get]
// @Success		200	{object}	nearbyResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) nearby(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	values := r.URL.Query()

	lat, err := strconv.ParseFloat(values.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	lon, err := strconv.ParseFloat(values.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	k := defaultNearbyK
	if raw := values.Get("k"); raw != "" {
		k, err = strconv.Atoi(raw)
		if err != nil {
			api.BadRequestResponse(w, r, err)
			return
		}
	}

	request := nearbyRequest{Lat: lat, Lon: lon, K: k}
	if !api.validateRequest(w, r, request) {
		return
	}

	results, err := api.mapService.Nearby(request.Lat, request.Lon, request.K)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
