package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"
)

const requestColumns = `id, product_id, product_name, customer_name, phone, email, event_date, days_required, outfit_type, message, status, admin_notes, quoted_price, advance_paid, deposit_amount, created_at, updated_at`

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func scanRequest(row interface{ Scan(...any) error }) (*domain.RentalRequest, error) {
	req := &domain.RentalRequest{Origin: domain.OriginRemote}
	var (
		productID sql.NullString
		email     sql.NullString
		message   sql.NullString
	)
	err := row.Scan(&req.ID, &productID, &req.ProductName, &req.CustomerName, &req.Phone, &email,
		&req.EventDate, &req.DaysRequired, &req.OutfitType, &message, &req.Status, &req.AdminNotes,
		&req.QuotedPrice, &req.AdvancePaid, &req.DepositAmount, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	req.ProductID = productID.String
	req.Email = email.String
	req.Message = message.String
	return req, nil
}

func (r *requestRepository) List(ctx context.Context) ([]domain.RentalRequest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+requestColumns+` FROM requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.RentalRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

// Create inserts a new request. Status and the financial columns rely on the
// schema defaults (pending, zero); the caller is expected to have forced them
// already at the service layer.
func (r *requestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	query := `INSERT INTO requests (product_id, product_name, customer_name, phone, email, event_date, days_required, outfit_type, message, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, status, admin_notes, quoted_price, advance_paid, deposit_amount, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		nullable(req.ProductID), req.ProductName, req.CustomerName, req.Phone, nullable(req.Email),
		req.EventDate, req.DaysRequired, req.OutfitType, nullable(req.Message), domain.RequestStatusPending,
	).Scan(&req.ID, &req.Status, &req.AdminNotes, &req.QuotedPrice, &req.AdvancePaid, &req.DepositAmount, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return err
	}
	req.Origin = domain.OriginRemote
	return nil
}

func (r *requestRepository) Update(ctx context.Context, id string, patch *domain.RequestPatch) (*domain.RentalRequest, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.QuotedPrice != nil {
		add("quoted_price", *patch.QuotedPrice)
	}
	if patch.AdvancePaid != nil {
		add("advance_paid", *patch.AdvancePaid)
	}
	if patch.DepositAmount != nil {
		add("deposit_amount", *patch.DepositAmount)
	}
	if patch.AdminNotes != nil {
		add("admin_notes", *patch.AdminNotes)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE requests SET %s WHERE id = $%d RETURNING `+requestColumns,
		strings.Join(sets, ", "), len(args))
	row := r.db.QueryRowContext(ctx, query, args...)
	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}
