package handler

import (
	"net/http"
)

// ClassifyRequest represents a hive classification
type ClassifyRequest struct {
	Label string `json:"label" validate:"required,max=64,excludesall=<>\x00"`
}

// HatchCheckRequest asks for a milestone check at score
type HatchCheckRequest struct {
	Score *int `json:"score" validate:"required,min=0"`
}

// BuildHive handles POST /hives
func (h *ApiaryHandler) BuildHive(w http.ResponseWriter, r *http.Request) {
	hive, err := h.svc.BuildHive(r.Context())
	if err != nil {
		respondServiceError(w, r, OpBuildHive, err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgHiveBuilt, Data: hive})
}

// BottleHoney handles POST /hives/{id}/bottle
func (h *ApiaryHandler) BottleHoney(w http.ResponseWriter, r *http.Request) {
	hiveID, ok := stringParam(w, r, "id")
	if !ok {
		return
	}
	res, err := h.svc.BottleHoney(r.Context(), hiveID)
	if err != nil {
		respondServiceError(w, r, OpBottleHoney, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgHoneyBottled, Data: res})
}

// Classify handles POST /hives/{id}/classify
func (h *ApiaryHandler) Classify(w http.ResponseWriter, r *http.Request) {
	hiveID, ok := stringParam(w, r, "id")
	if !ok {
		return
	}
	var req ClassifyRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpClassify); err != nil {
		return
	}

	rec, err := h.svc.Classify(r.Context(), hiveID, req.Label)
	if err != nil {
		respondServiceError(w, r, OpClassify, err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgClassified, Data: rec})
}

// BottleNectar handles POST /nectar/bottle
func (h *ApiaryHandler) BottleNectar(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.BottleNectar(r.Context())
	if err != nil {
		respondServiceError(w, r, OpBottleNectar, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgNectarBottled, Data: res})
}

// CheckHatching handles POST /hatching/check
func (h *ApiaryHandler) CheckHatching(w http.ResponseWriter, r *http.Request) {
	var req HatchCheckRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpHatchCheck); err != nil {
		return
	}
	res, err := h.svc.CheckForBeeHatching(r.Context(), *req.Score)
	if err != nil {
		respondServiceError(w, r, OpHatchCheck, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
