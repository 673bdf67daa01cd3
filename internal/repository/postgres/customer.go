package postgres

import (
	"context"
	"database/sql"
	"errors"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"
)

const customerColumns = `id, name, phone, email, total_spent, request_count, created_at`

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{Origin: domain.OriginRemote}
	var email sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &email, &c.TotalSpent, &c.RequestCount, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Email = email.String
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE phone = $1`, phone)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

// UpsertByPhone keys on the unique phone column. The name always takes the
// most recent value; a blank email never overwrites a stored one.
func (r *customerRepository) UpsertByPhone(ctx context.Context, name, phone, email string) (*domain.Customer, error) {
	query := `INSERT INTO customers (name, phone, email, request_count)
	          VALUES ($1, $2, $3, 1)
	          ON CONFLICT (phone) DO UPDATE SET
	              name = EXCLUDED.name,
	              email = COALESCE(NULLIF(EXCLUDED.email, ''), customers.email),
	              request_count = customers.request_count + 1
	          RETURNING ` + customerColumns
	row := r.db.QueryRowContext(ctx, query, name, phone, nullable(email))
	return scanCustomer(row)
}
