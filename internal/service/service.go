package service

import (
	"context"

	"parnika-backend/internal/domain"
)

type CatalogService interface {
	ListProducts(ctx context.Context, category domain.Category, activeOnly bool) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	AddProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

// CreateRequestInput is a storefront submission. Status and financial fields
// are not accepted from the caller; they are forced at creation.
type CreateRequestInput struct {
	ProductID    string `json:"productId,omitempty"`
	OutfitType   string `json:"outfitType"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	EventDate    string `json:"eventDate"`
	DaysRequired int    `json:"daysRequired"`
	Message      string `json:"message,omitempty"`
}

type RentalService interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.RentalRequest, error)
	ListRequests(ctx context.Context) ([]domain.RentalRequest, error)
	GetRequest(ctx context.Context, id string) (*domain.RentalRequest, error)
	// UpdateRequest saves the admin's status change together with the current
	// financial drafts and notes, as the admin workflow always does.
	UpdateRequest(ctx context.Context, id string, patch *domain.RequestPatch) (*domain.RentalRequest, error)
}

// FinanceDraft carries the admin console's edited-but-unsaved financial
// fields, persisted onto the request as part of invoice creation.
type FinanceDraft struct {
	QuotedPrice   float64 `json:"quotedPrice"`
	AdvancePaid   float64 `json:"advancePaid"`
	DepositAmount float64 `json:"depositAmount"`
	AdminNotes    string  `json:"adminNotes"`
}

type BillingService interface {
	CreateInvoiceFromRequest(ctx context.Context, requestID string, draft FinanceDraft) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)
	// AdvanceInvoiceStatus moves draft -> sent -> paid one step at a time.
	AdvanceInvoiceStatus(ctx context.Context, id string, next domain.InvoiceStatus) (*domain.Invoice, error)
	// UpdateInvoice edits advance, deposit and notes after creation. Status
	// changes go through AdvanceInvoiceStatus.
	UpdateInvoice(ctx context.Context, id string, patch *domain.InvoicePatch) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) (bool, error)
}

type CustomerService interface {
	// ListCustomers returns customers with totalSpent and requestCount
	// recomputed from the request history at read time.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerRequests(ctx context.Context, phone string) ([]domain.RentalRequest, error)
}

type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

type EmailService interface {
	SendRequestNotification(ctx context.Context, req *domain.RentalRequest) error
}
