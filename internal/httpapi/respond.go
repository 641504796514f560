package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"shopspot-be/internal/cart"
	"shopspot-be/internal/checkout"
	"shopspot-be/internal/coupon"
	"shopspot-be/internal/logger"
	"shopspot-be/internal/order"
	"shopspot-be/internal/payment"
	"shopspot-be/internal/product"
	"shopspot-be/internal/user"
)

// envelope is the wire shape of every response.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Message: message, Data: data})
}

// respondError maps domain errors onto HTTP statuses. Unknown errors are
// logged and hidden behind a generic 500 so internals never leak to clients.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, coupon.ErrMissingFields),
		errors.Is(err, order.ErrMissingFields),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, product.ErrMissingFields),
		errors.Is(err, user.ErrMissingFields),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidDiscount),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, checkout.ErrPaymentNotInitialized),
		errors.Is(err, checkout.ErrEmptyCart):
		code, message = http.StatusBadRequest, err.Error()

	case errors.Is(err, checkout.ErrNotAuthenticated),
		errors.Is(err, user.ErrInvalidCredentials):
		code, message = http.StatusUnauthorized, err.Error()

	case errors.Is(err, order.ErrUnauthorized):
		code, message = http.StatusForbidden, err.Error()

	case errors.Is(err, coupon.ErrCouponNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, cart.ErrLineNotFound):
		code, message = http.StatusNotFound, err.Error()

	case errors.Is(err, coupon.ErrCodeExists),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, cart.ErrOutOfStock),
		errors.Is(err, checkout.ErrAmountMismatch),
		errors.Is(err, checkout.ErrCheckoutInProgress):
		code, message = http.StatusConflict, err.Error()

	case errors.Is(err, checkout.ErrPaymentNotConfirmed):
		code, message = http.StatusPaymentRequired, err.Error()

	case errors.Is(err, payment.ErrProvider):
		code, message = http.StatusBadGateway, err.Error()

	default:
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
			code, message = http.StatusConflict, "resource already exists"
			break
		}
		logger.FromCtx(r.Context()).Error("unhandled request error",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Message: message})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
