package httpapi

import (
	"net/http"

	"shopspot-be/internal/checkout"
	"shopspot-be/internal/utils"
)

type CheckoutHandler struct {
	orchestrator *checkout.Orchestrator
}

func NewCheckoutHandler(orchestrator *checkout.Orchestrator) *CheckoutHandler {
	return &CheckoutHandler{orchestrator: orchestrator}
}

type checkoutRequest struct {
	IntentID string `json:"intent_id"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, checkout.ErrPaymentNotInitialized)
		return
	}

	placed, err := h.orchestrator.Run(r.Context(), userID, req.IntentID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusCreated, "order placed", placed)
}
