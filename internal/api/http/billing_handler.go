package http

import (
	"net/http"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/service"

	"github.com/gorilla/mux"
)

type BillingHandler struct {
	billing service.BillingService
}

func NewBillingHandler(billing service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

// invoiceView decorates an invoice with the display-time derived figures.
type invoiceView struct {
	domain.Invoice
	BalanceDue    float64 `json:"balanceDue"`
	TotalReceived float64 `json:"totalReceived"`
}

func viewOf(inv *domain.Invoice) invoiceView {
	return invoiceView{
		Invoice:       *inv,
		BalanceDue:    service.BalanceDue(inv),
		TotalReceived: service.TotalReceived(inv.AdvancePaid, inv.DepositAmount),
	}
}

func (h *BillingHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.billing.ListInvoices(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	views := make([]invoiceView, 0, len(invoices))
	for i := range invoices {
		views = append(views, viewOf(&invoices[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.billing.GetInvoice(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(inv))
}

func (h *BillingHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var patch domain.InvoicePatch
	if !decodeBody(w, r, &patch) {
		return
	}
	inv, err := h.billing.UpdateInvoice(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(inv))
}

type statusChange struct {
	Status domain.InvoiceStatus `json:"status"`
}

func (h *BillingHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	var change statusChange
	if !decodeBody(w, r, &change) {
		return
	}
	inv, err := h.billing.AdvanceInvoiceStatus(r.Context(), mux.Vars(r)["id"], change.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(inv))
}

func (h *BillingHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.billing.DeleteInvoice(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	if !deleted {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "invoice not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
