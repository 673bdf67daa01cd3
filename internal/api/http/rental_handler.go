package http

import (
	"net/http"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	rentals service.RentalService
	billing service.BillingService
}

func NewRentalHandler(rentals service.RentalService, billing service.BillingService) *RentalHandler {
	return &RentalHandler{rentals: rentals, billing: billing}
}

func (h *RentalHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRequestInput
	if !decodeBody(w, r, &input) {
		return
	}
	req, err := h.rentals.CreateRequest(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

func (h *RentalHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.rentals.ListRequests(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.RentalRequest{}
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *RentalHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.rentals.GetRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RentalHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	var patch domain.RequestPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	req, err := h.rentals.UpdateRequest(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

// CreateInvoice derives the invoice for a request from the admin's current
// finance draft.
func (h *RentalHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var draft service.FinanceDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	inv, err := h.billing.CreateInvoiceFromRequest(r.Context(), mux.Vars(r)["id"], draft)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, inv)
}
