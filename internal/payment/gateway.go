package payment

import (
	"context"
	"errors"
)

var (
	// -- Validation & Input --
	ErrInvalidAmount = errors.New("payment amount must be positive")

	// -- External Systems --
	ErrProvider = errors.New("payment provider error")
)

// IntentStatusSucceeded is the provider's terminal success status for an
// intent; the checkout orchestrator requires it before creating an order.
const IntentStatusSucceeded = "succeeded"

// Intent is the processor's handle for an authorization-in-progress.
// ClientSecret is the opaque value the client confirms with out-of-band.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// Gateway is the boundary to the external payment processor. It holds no
// state; repeated CreateIntent calls for the same checkout create distinct
// remote intents.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
}
