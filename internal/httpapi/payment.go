package httpapi

import (
	"net/http"

	"shopspot-be/internal/payment"
)

type PaymentHandler struct {
	gateway payment.Gateway
}

func NewPaymentHandler(gateway payment.Gateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

type createIntentRequest struct {
	Amount int64 `json:"amount"`
}

type createIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, payment.ErrInvalidAmount)
		return
	}

	intent, err := h.gateway.CreateIntent(r.Context(), req.Amount)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusCreated, createIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	})
}
