package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"
)

const invoiceColumns = `id, invoice_number, request_id, customer_id, customer_name, customer_phone, items, subtotal, discount, total, advance_paid, deposit_amount, status, notes, created_at`

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func scanInvoice(row interface{ Scan(...any) error }) (*domain.Invoice, error) {
	inv := &domain.Invoice{Origin: domain.OriginRemote}
	var (
		requestID  sql.NullString
		customerID sql.NullString
		items      []byte
		notes      sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &requestID, &customerID, &inv.CustomerName,
		&inv.CustomerPhone, &items, &inv.Subtotal, &inv.Discount, &inv.Total,
		&inv.AdvancePaid, &inv.DepositAmount, &inv.Status, &notes, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	inv.RequestID = requestID.String
	inv.CustomerID = customerID.String
	inv.Notes = notes.String
	if len(items) > 0 {
		if err := json.Unmarshal(items, &inv.Items); err != nil {
			return nil, fmt.Errorf("decode invoice items: %w", err)
		}
	}
	return inv, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return inv, err
}

func (r *invoiceRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE request_id = $1`, requestID)
	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return inv, err
}

func (r *invoiceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM invoices`).Scan(&n)
	return n, err
}

func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return err
	}
	query := `INSERT INTO invoices (invoice_number, request_id, customer_id, customer_name, customer_phone, items, subtotal, discount, total, advance_paid, deposit_amount, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		inv.InvoiceNumber, nullable(inv.RequestID), nullable(inv.CustomerID), inv.CustomerName,
		inv.CustomerPhone, items, inv.Subtotal, inv.Discount, inv.Total,
		inv.AdvancePaid, inv.DepositAmount, inv.Status, nullable(inv.Notes),
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return err
	}
	inv.Origin = domain.OriginRemote
	return nil
}

func (r *invoiceRepository) Update(ctx context.Context, id string, patch *domain.InvoicePatch) (*domain.Invoice, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.AdvancePaid != nil {
		add("advance_paid", *patch.AdvancePaid)
	}
	if patch.DepositAmount != nil {
		add("deposit_amount", *patch.DepositAmount)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE invoices SET %s WHERE id = $%d RETURNING `+invoiceColumns,
		strings.Join(sets, ", "), len(args))
	row := r.db.QueryRowContext(ctx, query, args...)
	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return inv, err
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
