package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Apiary_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the handler should return.
//
//	var req PlantRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpPlantSeed); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is missing
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// plotIDParam reads the {id} path parameter as a plot id.
// If ok is false the response has already been written.
func plotIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidPlotID, "raw", chi.URLParam(r, "id"))
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlotID)
		return 0, false
	}
	return id, true
}

// stringParam reads a required path parameter.
// If ok is false the response has already been written.
func stringParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := chi.URLParam(r, name)
	if v == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, name))
		return "", false
	}
	return v, true
}
