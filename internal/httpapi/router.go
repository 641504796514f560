package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"shopspot-be/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Coupons  *CouponHandler
	Orders   *OrderHandler
	Payments *PaymentHandler
	Products *ProductHandler
	Stats    *StatsHandler
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(15 * time.Second))
	r.Use(middleware.CORS)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.List)
			r.Get("/latest", h.Products.Latest)
			r.Get("/featured", h.Products.Featured)
			r.Get("/categories", h.Products.Categories)
			r.Get("/{id}", h.Products.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/new", h.Products.Create)
				r.Put("/{id}", h.Products.Update)
				r.Delete("/{id}", h.Products.Delete)
				r.Put("/{id}/featured", h.Products.ToggleFeatured)
			})
		})

		r.Route("/coupons", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Get("/apply", h.Coupons.Apply)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/new", h.Coupons.Create)
				r.Get("/all", h.Coupons.List)
				r.Delete("/{id}", h.Coupons.Delete)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/", h.Cart.Get)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{productID}/increment", h.Cart.IncrementItem)
			r.Put("/items/{productID}/decrement", h.Cart.DecrementItem)
			r.Delete("/items/{productID}", h.Cart.RemoveItem)
			r.Post("/discount", h.Cart.ApplyDiscount)
			r.Delete("/discount", h.Cart.RemoveDiscount)
			r.Put("/shipping", h.Cart.SaveShipping)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/new", h.Payments.CreateIntent)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/checkout", h.Checkout.Checkout)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/my", h.Orders.ListMine)
			r.Get("/{id}", h.Orders.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/all", h.Orders.ListAll)
				r.Put("/{id}", h.Orders.UpdateStatus)
				r.Delete("/{id}", h.Orders.Delete)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/stats", h.Stats.Dashboard)
			r.Get("/users", h.Auth.ListUsers)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/me", h.Auth.Me)
		})
	})

	return r
}
