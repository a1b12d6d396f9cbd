package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RouterDeps carries the handlers and middleware collaborators the
// router mounts.
type RouterDeps struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Orders   *OrdersHandler
	Payments *PaymentsHandler
	Auth     *AuthHandler
	Tokens   TokenValidator

	RequestTimeout time.Duration
}

// NewRouter builds the HTTP surface. Catalog browsing and
// authentication are public; cart, checkout, orders and payment
// verification require a bearer token.
func NewRouter(deps RouterDeps) http.Handler {
	if deps.RequestTimeout == 0 {
		deps.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListProducts)
			r.Get("/{id}", deps.Catalog.GetProduct)
		})
		r.Get("/categories", deps.Catalog.ListCategories)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(deps.Tokens))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", deps.Cart.GetCart)
				r.Post("/items", deps.Cart.AddItem)
				r.Put("/items/{product_id}", deps.Cart.UpdateQuantity)
				r.Delete("/items/{product_id}", deps.Cart.RemoveItem)
				r.Delete("/", deps.Cart.ClearCart)
			})

			r.Post("/checkout", deps.Checkout.PlaceOrder)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", deps.Orders.ListOrders)
				r.Get("/{id}", deps.Orders.GetOrder)
			})

			r.Post("/payments/verify", deps.Payments.VerifyPayment)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
