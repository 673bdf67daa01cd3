package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid:
		return true
	}
	return false
}

// InvoiceItem is one billed line. Product name and pricing are denormalized
// at creation time so the invoice stays stable if the catalog changes.
type InvoiceItem struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Days        int     `json:"days"`
	PricePerDay float64 `json:"pricePerDay"`
	Total       float64 `json:"total"`
}

// Invoice is the billing document derived from one rental request. At most
// one invoice exists per request. DepositAmount starts at zero even when the
// request planned a deposit: the deposit is collected in person at pickup and
// recorded through an invoice update, never assumed received at creation.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	RequestID     string        `json:"requestId,omitempty"`
	CustomerID    string        `json:"customerId,omitempty"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	AdvancePaid   float64       `json:"advancePaid"`
	DepositAmount float64       `json:"depositAmount"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes"`
	Origin        Origin        `json:"origin,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// InvoicePatch carries the fields editable after creation.
type InvoicePatch struct {
	Status        *InvoiceStatus `json:"status,omitempty"`
	AdvancePaid   *float64       `json:"advancePaid,omitempty"`
	DepositAmount *float64       `json:"depositAmount,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
}

func (patch *InvoicePatch) Apply(inv *Invoice) {
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	if patch.AdvancePaid != nil {
		inv.AdvancePaid = *patch.AdvancePaid
	}
	if patch.DepositAmount != nil {
		inv.DepositAmount = *patch.DepositAmount
	}
	if patch.Notes != nil {
		inv.Notes = *patch.Notes
	}
}
