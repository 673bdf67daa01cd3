// Package postgres is the remote persistence adapter. It owns the mapping
// between the application's field names and the stored column names
// (image <-> image_url, discountedPrice <-> discounted_price, and so on);
// that translation never leaks past this package.
package postgres

import (
	"database/sql"

	"parnika-backend/internal/repository"

	_ "github.com/lib/pq"
)

func NewStore(db *sql.DB) *repository.Store {
	return &repository.Store{
		Products:  NewProductRepository(db),
		Requests:  NewRequestRepository(db),
		Customers: NewCustomerRepository(db),
		Invoices:  NewInvoiceRepository(db),
	}
}

// nullable maps an empty string to SQL NULL, for optional reference columns.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
