package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopspot-be/internal/cart"
	"shopspot-be/internal/coupon"
	"shopspot-be/internal/product"
	"shopspot-be/internal/utils"
)

type CartHandler struct {
	carts    *cart.Store
	products product.Service
	coupons  coupon.Service
}

func NewCartHandler(carts *cart.Store, products product.Service, coupons coupon.Service) *CartHandler {
	return &CartHandler{carts: carts, products: products, coupons: coupons}
}

type addItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type applyDiscountRequest struct {
	Code string `json:"code"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	c, err := h.carts.Get(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, c)
}

// AddItem snapshots the product at the moment it enters the cart. The price
// and stock the shopper sees from then on are the snapshot, not the catalog.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, cart.ErrInvalidQuantity)
		return
	}

	p, err := h.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	c, err := h.carts.AddItem(r.Context(), userID, cart.Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  req.Quantity,
		Stock:     p.Stock,
		Photo:     p.Photo,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, c)
}

func (h *CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.carts.IncrementItem)
}

func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.carts.DecrementItem)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.carts.RemoveItem)
}

func (h *CartHandler) mutateItem(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, userID, productID uint) (*cart.Cart, error),
) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	productID, err := productIDParam(r)
	if err != nil {
		respondError(w, r, cart.ErrLineNotFound)
		return
	}

	c, err := fn(r.Context(), userID, productID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, c)
}

func (h *CartHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req applyDiscountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, coupon.ErrMissingFields)
		return
	}

	cpn, err := h.coupons.Apply(r.Context(), req.Code)
	if err != nil {
		respondError(w, r, err)
		return
	}

	c, err := h.carts.ApplyDiscount(r.Context(), userID, cpn.Amount)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "discount applied", c)
}

func (h *CartHandler) RemoveDiscount(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	c, err := h.carts.RemoveDiscount(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, c)
}

func (h *CartHandler) SaveShipping(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var info cart.ShippingInfo
	if err := decodeJSON(r, &info); err != nil {
		respondError(w, r, cart.ErrInvalidQuantity)
		return
	}

	if err := h.carts.SaveShippingInfo(r.Context(), userID, info); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "shipping info saved", nil)
}

func productIDParam(r *http.Request) (uint, error) {
	return utils.ToUint(chi.URLParam(r, "productID"))
}
