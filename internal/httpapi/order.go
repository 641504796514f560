package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"shopspot-be/internal/order"
	"shopspot-be/internal/utils"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type updateStatusRequest struct {
	Status order.Status `json:"status"`
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, order.ErrOrderNotFound)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())

	o, err := h.orders.Get(r.Context(), id, userID, utils.IsAdmin(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, o)
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orders, err := h.orders.ListForUser(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, order.ErrOrderNotFound)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, order.ErrInvalidStatus)
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), id, req.Status); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "order status updated", nil)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, order.ErrOrderNotFound)
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "order deleted", nil)
}
