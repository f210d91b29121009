package handler

import (
	"net/http"

	"github.com/osse101/Apiary_Go/internal/crop"
	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/weather"
)

// QualityResponse is the pollinator score with the inputs it was computed from
type QualityResponse struct {
	Season  domain.Season            `json:"season"`
	Weather *domain.Weather          `json:"weather"`
	Quality domain.PollinatorQuality `json:"quality"`
}

// CropResponse is a catalog entry with its display name
type CropResponse struct {
	domain.CropDefinition
	DisplayName string `json:"displayName"`
}

// GetState handles GET /state
func (h *ApiaryHandler) GetState(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.State(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetState, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// GetQuality handles GET /quality?season=. The season defaults to the current month's.
func (h *ApiaryHandler) GetQuality(w http.ResponseWriter, r *http.Request) {
	season, ok := weather.ParseSeason(GetOptionalQueryParam(r, "season", ""), h.clock.Now())
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSeason)
		return
	}

	wx := h.svc.CurrentWeather(r.Context())
	q, err := h.svc.ComputePollinatorQuality(r.Context(), wx, season)
	if err != nil {
		respondServiceError(w, r, OpGetQuality, err)
		return
	}
	respondJSON(w, http.StatusOK, QualityResponse{Season: season, Weather: wx, Quality: q})
}

// GetCrops handles GET /crops
func (h *ApiaryHandler) GetCrops(w http.ResponseWriter, r *http.Request) {
	defs := h.svc.Crops()
	out := make([]CropResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, CropResponse{CropDefinition: d, DisplayName: crop.DisplayName(d.ID)})
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: out})
}
