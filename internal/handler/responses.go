package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Reason carries the domain detail for rejected actions.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and maps it to a status and user-facing message.
// Client errors include the domain reason; server errors never do.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())

	resp := ErrorResponse{Error: msg}
	if status < http.StatusInternalServerError {
		resp.Reason = err.Error()
		log.Info(opName+" rejected", "status", status, "reason", err)
	} else {
		log.Error(opName+" failed", "error", err)
	}
	respondJSON(w, status, resp)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgPlotNotFoundError   = "Plot not found"
	ErrMsgHiveNotFoundError   = "Hive not found"
	ErrMsgOrderNotFoundError  = "Order not found"
	ErrMsgCropNotFoundError   = "Unknown crop"
	ErrMsgWrongPlotStateError = "That action does not fit the plot right now"
	ErrMsgTooSoonError        = "The plot is not ready for water yet"

	ErrMsgNotEnoughSeedsError   = "Not enough seeds"
	ErrMsgNotEnoughWaterError   = "Not enough water"
	ErrMsgNotEnoughCoinsError   = "Not enough coins"
	ErrMsgNoBottlesError        = "No glass bottles left"
	ErrMsgNotEnoughNectarError  = "Not enough nectar to fill a bottle"
	ErrMsgMissingItemsError     = "Missing items for this order"
	ErrMsgInsufficientResources = "Not enough resources"

	ErrMsgHivesFullError       = "Hives are at capacity"
	ErrMsgBatchNotReadyError   = "The honey batch is not complete yet"
	ErrMsgNoBatchError         = "No honey batch in progress"
	ErrMsgOrderExpiredError    = "That order has expired"
	ErrMsgOrderNotActiveError  = "That order is no longer active"
	ErrMsgNoSessionError       = "Sign in to classify hives"
	ErrMsgAlreadyClassifiedErr = "That hive was already classified today"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages.
// Specific sentinels are checked before the families that wrap them.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var missing *domain.MissingItemsError
	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest, ErrMsgMissingItemsError
	case errors.Is(err, domain.ErrPlotNotFound):
		return http.StatusNotFound, ErrMsgPlotNotFoundError
	case errors.Is(err, domain.ErrHiveNotFound):
		return http.StatusNotFound, ErrMsgHiveNotFoundError
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, ErrMsgOrderNotFoundError
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusBadRequest, ErrMsgCropNotFoundError
	case errors.Is(err, domain.ErrTooSoon):
		return http.StatusConflict, ErrMsgTooSoonError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgWrongPlotStateError
	case errors.Is(err, domain.ErrInsufficientSeeds):
		return http.StatusBadRequest, ErrMsgNotEnoughSeedsError
	case errors.Is(err, domain.ErrInsufficientWater):
		return http.StatusBadRequest, ErrMsgNotEnoughWaterError
	case errors.Is(err, domain.ErrInsufficientCoins):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrInsufficientBottles):
		return http.StatusBadRequest, ErrMsgNoBottlesError
	case errors.Is(err, domain.ErrInsufficientNectar):
		return http.StatusBadRequest, ErrMsgNotEnoughNectarError
	case errors.Is(err, domain.ErrInsufficientResource):
		return http.StatusBadRequest, ErrMsgInsufficientResources
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusConflict, ErrMsgHivesFullError
	case errors.Is(err, domain.ErrBatchNotComplete):
		return http.StatusConflict, ErrMsgBatchNotReadyError
	case errors.Is(err, domain.ErrNoBatchInProgress):
		return http.StatusConflict, ErrMsgNoBatchError
	case errors.Is(err, domain.ErrOrderExpired):
		return http.StatusGone, ErrMsgOrderExpiredError
	case errors.Is(err, domain.ErrOrderNotActive):
		return http.StatusConflict, ErrMsgOrderNotActiveError
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, ErrMsgNoSessionError
	case errors.Is(err, domain.ErrAlreadyClassified):
		return http.StatusTooManyRequests, ErrMsgAlreadyClassifiedErr
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidCount):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
