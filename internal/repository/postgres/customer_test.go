package postgres_test

import (
	"context"
	"testing"
	"time"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var customerCols = []string{"id", "name", "phone", "email", "total_spent", "request_count", "created_at"}

func TestCustomerUpsertByPhone_NewCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewCustomerRepository(db)

	mock.ExpectQuery(`INSERT INTO customers .+ ON CONFLICT \(phone\) DO UPDATE SET`).
		WithArgs("Asha", "9876543210", "asha@example.com").
		WillReturnRows(mock.NewRows(customerCols).
			AddRow("a4ad2a9e-0000-0000-0000-000000000020", "Asha", "9876543210", "asha@example.com", 0.0, 1, time.Now()))

	c, err := repo.UpsertByPhone(context.Background(), "Asha", "9876543210", "asha@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "a4ad2a9e-0000-0000-0000-000000000020", c.ID)
	assert.Equal(t, 1, c.RequestCount)
	assert.Equal(t, domain.OriginRemote, c.Origin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpsertByPhone_BlankEmailKeepsStoredOne(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewCustomerRepository(db)

	// A blank email is sent as NULL so COALESCE keeps the stored value.
	mock.ExpectQuery(`INSERT INTO customers .+ ON CONFLICT \(phone\) DO UPDATE SET`).
		WithArgs("Asha Rao", "9876543210", nil).
		WillReturnRows(mock.NewRows(customerCols).
			AddRow("a4ad2a9e-0000-0000-0000-000000000020", "Asha Rao", "9876543210", "asha@example.com", 0.0, 2, time.Now()))

	c, err := repo.UpsertByPhone(context.Background(), "Asha Rao", "9876543210", "")
	assert.NoError(t, err)
	assert.Equal(t, "Asha Rao", c.Name)
	assert.Equal(t, "asha@example.com", c.Email)
	assert.Equal(t, 2, c.RequestCount)
}

func TestCustomerGetByPhone_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM customers WHERE phone = \$1`).
		WithArgs("0000000000").
		WillReturnRows(mock.NewRows(customerCols))

	_, err = repo.GetByPhone(context.Background(), "0000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM customers ORDER BY created_at DESC`).
		WillReturnRows(mock.NewRows(customerCols).
			AddRow("a4ad2a9e-0000-0000-0000-000000000020", "Asha", "9876543210", nil, 9000.0, 3, time.Now()))

	customers, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, customers, 1)
	assert.Empty(t, customers[0].Email)
}
