package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopspot-be/internal/coupon"
	"shopspot-be/internal/utils"
)

type CouponHandler struct {
	coupons coupon.Service
}

func NewCouponHandler(coupons coupon.Service) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

type createCouponRequest struct {
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
}

type applyCouponResponse struct {
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
}

func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, coupon.ErrMissingFields)
		return
	}

	cpn, err := h.coupons.Create(r.Context(), req.Code, req.Amount)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusCreated, "coupon created", cpn)
}

// Apply validates a code without consuming it. Coupons are reusable, so this
// endpoint only reports the discount the code is worth.
func (h *CouponHandler) Apply(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	cpn, err := h.coupons.Apply(r.Context(), code)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, applyCouponResponse{Code: cpn.Code, Amount: cpn.Amount})
}

func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupons.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, coupons)
}

func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, coupon.ErrCouponNotFound)
		return
	}

	if err := h.coupons.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "coupon deleted", nil)
}
