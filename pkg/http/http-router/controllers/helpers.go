package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mentora-labs/campus-map/pkg"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"go.uber.org/zap"
)

type envelope map[string]interface{}

// writeJSON marshals data structure to encoded JSON response.
func (api *mapAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

func (api *mapAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int,
	code, message string) {
	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = message

	js, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	js = append(js, '\n')
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

func (api *mapAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *mapAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", err.Error())
}

func (api *mapAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal error", zap.String("path", r.URL.Path), zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_error",
		pkg.MessageInternalServerError)
}

// serviceErrorResponse maps service error codes onto HTTP statuses.
func (api *mapAPI) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *pkg.Error
	if errors.As(err, &appErr) {
		switch appErr.Code() {
		case pkg.ErrNotFound:
			api.NotFoundResponse(w, r, err)
			return
		case pkg.ErrBadParamInput:
			api.BadRequestResponse(w, r, err)
			return
		}
	}
	api.ServerErrorResponse(w, r, err)
}

// validateRequest runs struct validation and writes the translated 400
// when it fails. Returns true when the request is valid.
func (api *mapAPI) validateRequest(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
