package handler

import (
	"net/http"

	"github.com/osse101/Apiary_Go/internal/logger"
)

// PlantRequest represents the request to sow a seed
type PlantRequest struct {
	CropID string `json:"crop_id" validate:"required,max=32,cropid"`
}

// TillPlot handles POST /plots/{id}/till
func (h *ApiaryHandler) TillPlot(w http.ResponseWriter, r *http.Request) {
	id, ok := plotIDParam(w, r)
	if !ok {
		return
	}
	p, err := h.svc.TillPlot(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpTillPlot, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// PlantSeed handles POST /plots/{id}/plant
func (h *ApiaryHandler) PlantSeed(w http.ResponseWriter, r *http.Request) {
	id, ok := plotIDParam(w, r)
	if !ok {
		return
	}
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPlantSeed); err != nil {
		return
	}

	p, err := h.svc.PlantSeed(r.Context(), id, req.CropID)
	if err != nil {
		respondServiceError(w, r, OpPlantSeed, err)
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgSeedPlanted, "plot_id", id, "crop", req.CropID)
	respondJSON(w, http.StatusOK, p)
}

// WaterPlot handles POST /plots/{id}/water
func (h *ApiaryHandler) WaterPlot(w http.ResponseWriter, r *http.Request) {
	id, ok := plotIDParam(w, r)
	if !ok {
		return
	}
	p, err := h.svc.WaterPlot(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpWaterPlot, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HarvestPlot handles POST /plots/{id}/harvest
func (h *ApiaryHandler) HarvestPlot(w http.ResponseWriter, r *http.Request) {
	id, ok := plotIDParam(w, r)
	if !ok {
		return
	}
	res, err := h.svc.HarvestPlot(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpHarvestPlot, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ClearPlot handles POST /plots/{id}/clear
func (h *ApiaryHandler) ClearPlot(w http.ResponseWriter, r *http.Request) {
	id, ok := plotIDParam(w, r)
	if !ok {
		return
	}
	p, err := h.svc.ClearPlot(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpClearPlot, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}
