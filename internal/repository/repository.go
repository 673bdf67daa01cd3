package repository

import (
	"context"

	"parnika-backend/internal/domain"
)

// ProductFilter narrows List by equality. Zero values mean "no filter".
type ProductFilter struct {
	Category   domain.Category
	ActiveOnly bool
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RequestRepository interface {
	List(ctx context.Context) ([]domain.RentalRequest, error)
	GetByID(ctx context.Context, id string) (*domain.RentalRequest, error)
	Create(ctx context.Context, r *domain.RentalRequest) error
	Update(ctx context.Context, id string, patch *domain.RequestPatch) (*domain.RentalRequest, error)
}

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	// UpsertByPhone creates a customer on first sight of a phone number and
	// thereafter overwrites the name with the most recent value. An empty
	// email never clears a stored one.
	UpsertByPhone(ctx context.Context, name, phone, email string) (*domain.Customer, error)
}

type InvoiceRepository interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	GetByRequestID(ctx context.Context, requestID string) (*domain.Invoice, error)
	// Count returns the number of invoice rows; invoice numbers derive from it.
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, inv *domain.Invoice) error
	Update(ctx context.Context, id string, patch *domain.InvoicePatch) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Store bundles the per-entity repositories behind one value, so callers can
// take the whole persistence surface as a single dependency.
type Store struct {
	Products  ProductRepository
	Requests  RequestRepository
	Customers CustomerRepository
	Invoices  InvoiceRepository
}
