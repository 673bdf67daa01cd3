package http

import (
	"net/http"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/service"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) ListCustomerRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.customers.GetCustomerRequests(r.Context(), mux.Vars(r)["phone"])
	if err != nil {
		respondError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.RentalRequest{}
	}
	respondJSON(w, http.StatusOK, requests)
}
