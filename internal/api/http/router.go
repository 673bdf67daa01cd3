package http

import (
	"net/http"

	"parnika-backend/internal/security"
	"parnika-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires the storefront and admin surfaces. Storefront routes are
// public; everything under /api/admin requires a session token.
func NewRouter(
	catalog service.CatalogService,
	rentals service.RentalService,
	billing service.BillingService,
	customers service.CustomerService,
	auth service.AuthService,
	tokens security.TokenManager,
) *mux.Router {
	catalogH := NewCatalogHandler(catalog)
	rentalH := NewRentalHandler(rentals, billing)
	billingH := NewBillingHandler(billing)
	customerH := NewCustomerHandler(customers)
	authH := NewAuthHandler(auth)

	r := mux.NewRouter()

	// Storefront
	r.HandleFunc("/api/products", catalogH.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", catalogH.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/api/requests", rentalH.SubmitRequest).Methods(http.MethodPost)

	// Admin session
	r.HandleFunc("/api/admin/login", authH.Login).Methods(http.MethodPost)

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(func(next http.Handler) http.Handler { return adminOnly(tokens, next) })

	admin.HandleFunc("/products", catalogH.AddProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", catalogH.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", catalogH.DeleteProduct).Methods(http.MethodDelete)

	admin.HandleFunc("/requests", rentalH.ListRequests).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{id}", rentalH.GetRequest).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{id}", rentalH.UpdateRequest).Methods(http.MethodPut)
	admin.HandleFunc("/requests/{id}/invoice", rentalH.CreateInvoice).Methods(http.MethodPost)

	admin.HandleFunc("/customers", customerH.ListCustomers).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{phone}/requests", customerH.ListCustomerRequests).Methods(http.MethodGet)

	admin.HandleFunc("/invoices", billingH.ListInvoices).Methods(http.MethodGet)
	admin.HandleFunc("/invoices/{id}", billingH.GetInvoice).Methods(http.MethodGet)
	admin.HandleFunc("/invoices/{id}", billingH.UpdateInvoice).Methods(http.MethodPut)
	admin.HandleFunc("/invoices/{id}/status", billingH.AdvanceStatus).Methods(http.MethodPost)
	admin.HandleFunc("/invoices/{id}", billingH.DeleteInvoice).Methods(http.MethodDelete)

	return r
}
