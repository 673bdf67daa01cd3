package localstore

import (
	"context"
	"time"

	"parnika-backend/internal/domain"
)

type invoiceRepository struct {
	fs *fileStore
}

func (r *invoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	invoices, err := read[domain.Invoice](r.fs, invoicesFile)
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(invoices, func(inv domain.Invoice) time.Time { return inv.CreatedAt })
	return invoices, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	invoices, err := read[domain.Invoice](r.fs, invoicesFile)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			return &invoices[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *invoiceRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.Invoice, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	invoices, err := read[domain.Invoice](r.fs, invoicesFile)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].RequestID == requestID {
			return &invoices[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *invoiceRepository) Count(ctx context.Context) (int, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	invoices, err := read[domain.Invoice](r.fs, invoicesFile)
	if err != nil {
		return 0, err
	}
	return len(invoices), nil
}

func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	invoices, err := read[domain.Invoice](r.fs, invoicesFile)
	if err != nil {
		return err
	}
	inv.ID = generateID()
	inv.Origin = domain.OriginLocal
	inv.CreatedAt = time.Now().UTC()
	invoices = append(invoices, *inv)
	return write(r.fs, invoicesFile, invoices)
}

func (r *invoiceRepository) Update(ctx context.Context, id string, patch *domain.InvoicePatch) (*domain.Invoice, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	invoices, err := read[domain.Invoice](r.fs, invoicesFile)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			patch.Apply(&invoices[i])
			if err := write(r.fs, invoicesFile, invoices); err != nil {
				return nil, err
			}
			return &invoices[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	invoices, err := read[domain.Invoice](r.fs, invoicesFile)
	if err != nil {
		return false, err
	}
	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	if len(kept) == len(invoices) {
		return false, nil
	}
	return true, write(r.fs, invoicesFile, kept)
}
