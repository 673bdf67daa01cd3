// Package fallback layers the remote adapter over the local one when a
// remote provider is configured. The contract is asymmetric on purpose:
// reads degrade silently to the local store when the remote call fails,
// but writes propagate the remote error to the caller — silently degrading
// a write would mean invisible data loss.
//
// Rows created while the provider was unconfigured carry local-format ids.
// Updates and deletes against such ids are routed straight to the local
// store and never reach the remote provider.
package fallback

import (
	"context"
	"errors"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/logger"
	"parnika-backend/internal/repository"

	"github.com/google/uuid"
)

// NewStore combines a configured remote store with the local fallback.
// When no remote provider is configured, callers should use the local
// store directly instead of wrapping it.
func NewStore(remote, local *repository.Store) *repository.Store {
	return &repository.Store{
		Products:  &productFallback{remote: remote.Products, local: local.Products},
		Requests:  &requestFallback{remote: remote.Requests, local: local.Requests},
		Customers: &customerFallback{remote: remote.Customers, local: local.Customers},
		Invoices:  &invoiceFallback{remote: remote.Invoices, local: local.Invoices},
	}
}

// remoteID reports whether id has the remote provider's identifier format.
// Local ids are base-36 timestamps with a random suffix, never UUIDs.
func remoteID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type productFallback struct {
	remote repository.ProductRepository
	local  repository.ProductRepository
}

func (f *productFallback) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	products, err := f.remote.List(ctx, filter)
	if err != nil {
		logger.Warn("remote product list failed, using local store", "error", err)
		return f.local.List(ctx, filter)
	}
	return products, nil
}

func (f *productFallback) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if !remoteID(id) {
		return f.local.GetByID(ctx, id)
	}
	p, err := f.remote.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("remote product read failed, using local store", "id", id, "error", err)
		return f.local.GetByID(ctx, id)
	}
	return p, err
}

func (f *productFallback) Create(ctx context.Context, p *domain.Product) error {
	return f.remote.Create(ctx, p)
}

func (f *productFallback) Update(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error) {
	if !remoteID(id) {
		return f.local.Update(ctx, id, patch)
	}
	return f.remote.Update(ctx, id, patch)
}

func (f *productFallback) Delete(ctx context.Context, id string) (bool, error) {
	if !remoteID(id) {
		return f.local.Delete(ctx, id)
	}
	return f.remote.Delete(ctx, id)
}

type requestFallback struct {
	remote repository.RequestRepository
	local  repository.RequestRepository
}

func (f *requestFallback) List(ctx context.Context) ([]domain.RentalRequest, error) {
	requests, err := f.remote.List(ctx)
	if err != nil {
		logger.Warn("remote request list failed, using local store", "error", err)
		return f.local.List(ctx)
	}
	return requests, nil
}

func (f *requestFallback) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	if !remoteID(id) {
		return f.local.GetByID(ctx, id)
	}
	req, err := f.remote.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("remote request read failed, using local store", "id", id, "error", err)
		return f.local.GetByID(ctx, id)
	}
	return req, err
}

func (f *requestFallback) Create(ctx context.Context, req *domain.RentalRequest) error {
	// A request may reference a product created in the local store; such a
	// reference is meaningless to the remote provider and is dropped there,
	// keeping the display name only.
	if req.ProductID != "" && !remoteID(req.ProductID) {
		req.ProductID = ""
	}
	return f.remote.Create(ctx, req)
}

func (f *requestFallback) Update(ctx context.Context, id string, patch *domain.RequestPatch) (*domain.RentalRequest, error) {
	if !remoteID(id) {
		return f.local.Update(ctx, id, patch)
	}
	return f.remote.Update(ctx, id, patch)
}

type customerFallback struct {
	remote repository.CustomerRepository
	local  repository.CustomerRepository
}

func (f *customerFallback) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := f.remote.List(ctx)
	if err != nil {
		logger.Warn("remote customer list failed, using local store", "error", err)
		return f.local.List(ctx)
	}
	return customers, nil
}

func (f *customerFallback) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	c, err := f.remote.GetByPhone(ctx, phone)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("remote customer read failed, using local store", "phone", phone, "error", err)
		return f.local.GetByPhone(ctx, phone)
	}
	return c, err
}

func (f *customerFallback) UpsertByPhone(ctx context.Context, name, phone, email string) (*domain.Customer, error) {
	return f.remote.UpsertByPhone(ctx, name, phone, email)
}

type invoiceFallback struct {
	remote repository.InvoiceRepository
	local  repository.InvoiceRepository
}

func (f *invoiceFallback) List(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := f.remote.List(ctx)
	if err != nil {
		logger.Warn("remote invoice list failed, using local store", "error", err)
		return f.local.List(ctx)
	}
	return invoices, nil
}

func (f *invoiceFallback) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if !remoteID(id) {
		return f.local.GetByID(ctx, id)
	}
	inv, err := f.remote.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("remote invoice read failed, using local store", "id", id, "error", err)
		return f.local.GetByID(ctx, id)
	}
	return inv, err
}

func (f *invoiceFallback) GetByRequestID(ctx context.Context, requestID string) (*domain.Invoice, error) {
	if !remoteID(requestID) {
		return f.local.GetByRequestID(ctx, requestID)
	}
	inv, err := f.remote.GetByRequestID(ctx, requestID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("remote invoice read failed, using local store", "requestId", requestID, "error", err)
		return f.local.GetByRequestID(ctx, requestID)
	}
	return inv, err
}

func (f *invoiceFallback) Count(ctx context.Context) (int, error) {
	n, err := f.remote.Count(ctx)
	if err != nil {
		logger.Warn("remote invoice count failed, using local store", "error", err)
		return f.local.Count(ctx)
	}
	return n, nil
}

func (f *invoiceFallback) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.RequestID != "" && !remoteID(inv.RequestID) {
		inv.RequestID = ""
	}
	if inv.CustomerID != "" && !remoteID(inv.CustomerID) {
		inv.CustomerID = ""
	}
	return f.remote.Create(ctx, inv)
}

func (f *invoiceFallback) Update(ctx context.Context, id string, patch *domain.InvoicePatch) (*domain.Invoice, error) {
	if !remoteID(id) {
		return f.local.Update(ctx, id, patch)
	}
	return f.remote.Update(ctx, id, patch)
}

func (f *invoiceFallback) Delete(ctx context.Context, id string) (bool, error) {
	if !remoteID(id) {
		return f.local.Delete(ctx, id)
	}
	return f.remote.Delete(ctx, id)
}
