package handler

import (
	"net/http"
)

// GetOrders handles GET /orders
func (h *ApiaryHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ActiveOrders(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetOrders, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: orders})
}

// GenerateOrders handles POST /orders/generate. A skipped check is still a 200.
func (h *ApiaryHandler) GenerateOrders(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.CheckAndGenerateOrders(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGenerate, err)
		return
	}
	msg := ""
	if len(res.Generated) == 0 {
		msg = MsgNoOrdersToCreate
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: msg, Data: res})
}

// FulfillOrder handles POST /orders/{id}/fulfill
func (h *ApiaryHandler) FulfillOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := stringParam(w, r, "id")
	if !ok {
		return
	}
	res, err := h.svc.FulfillOrder(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, r, OpFulfill, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgOrderFulfilled, Data: res})
}

// GetHoneyOrders handles GET /honey-orders
func (h *ApiaryHandler) GetHoneyOrders(w http.ResponseWriter, r *http.Request) {
	board, err := h.svc.HoneyOrders(r.Context())
	if err != nil {
		respondServiceError(w, r, OpHoneyOrders, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: board})
}

// FulfillHoneyOrder handles POST /honey-orders/{id}/fulfill
func (h *ApiaryHandler) FulfillHoneyOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := stringParam(w, r, "id")
	if !ok {
		return
	}
	res, err := h.svc.FulfillHoneyOrder(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, r, OpFulfillHoney, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgHoneyDelivered, Data: res})
}
