package localstore

import (
	"context"
	"testing"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestGenerateID_IsNotAUUID(t *testing.T) {
	for i := 0; i < 10; i++ {
		id := generateID()
		assert.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.Error(t, err, "local ids must never parse as remote ids: %s", id)
	}
}

func TestProductRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := &domain.Product{
		Name:     "Bridal Lehenga",
		Category: domain.CategoryWomen,
		Price:    12000,
		IsActive: true,
	}
	require.NoError(t, store.Products.Create(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.OriginLocal, p.Origin)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := store.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bridal Lehenga", got.Name)

	_, err = store.Products.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_Filtering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	active := &domain.Product{Name: "Saree", Category: domain.CategoryWomen, IsActive: true}
	inactive := &domain.Product{Name: "Gown", Category: domain.CategoryWomen, IsActive: false}
	men := &domain.Product{Name: "Sherwani", Category: domain.CategoryMen, IsActive: true}
	require.NoError(t, store.Products.Create(ctx, active))
	require.NoError(t, store.Products.Create(ctx, inactive))
	require.NoError(t, store.Products.Create(ctx, men))

	out, err := store.Products.List(ctx, repository.ProductFilter{Category: domain.CategoryWomen, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Saree", out[0].Name)

	out, err = store.Products.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestProductUpdate_LeavesOtherFieldsAlone(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := &domain.Product{Name: "Saree", Category: domain.CategoryWomen, Price: 5000, IsActive: true}
	require.NoError(t, store.Products.Create(ctx, p))

	price := 4500.0
	updated, err := store.Products.Update(ctx, p.ID, &domain.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 4500.0, updated.Price)
	assert.Equal(t, "Saree", updated.Name)
	assert.True(t, updated.IsActive)
	assert.Equal(t, domain.OriginLocal, updated.Origin)

	_, err = store.Products.Update(ctx, "nope", &domain.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := &domain.Product{Name: "Saree", Category: domain.CategoryWomen}
	require.NoError(t, store.Products.Create(ctx, p))

	deleted, err := store.Products.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Products.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRequestCreate_ForcesInitialValues(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	req := &domain.RentalRequest{
		CustomerName:  "Asha",
		Phone:         "9876543210",
		EventDate:     "2026-10-12",
		DaysRequired:  3,
		OutfitType:    "lehenga",
		Status:        domain.RequestStatusApproved, // must be overridden
		QuotedPrice:   9999,
		AdvancePaid:   100,
		DepositAmount: 100,
		AdminNotes:    "sneaky",
	}
	require.NoError(t, store.Requests.Create(ctx, req))

	assert.Equal(t, domain.RequestStatusPending, req.Status)
	assert.Zero(t, req.QuotedPrice)
	assert.Zero(t, req.AdvancePaid)
	assert.Zero(t, req.DepositAmount)
	assert.Empty(t, req.AdminNotes)
	assert.Equal(t, domain.OriginLocal, req.Origin)
}

func TestRequestUpdate_TouchesUpdatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	req := &domain.RentalRequest{CustomerName: "Asha", Phone: "9", EventDate: "2026-10-12", DaysRequired: 1, OutfitType: "saree"}
	require.NoError(t, store.Requests.Create(ctx, req))
	created := req.UpdatedAt

	approved := domain.RequestStatusApproved
	price := 9000.0
	updated, err := store.Requests.Update(ctx, req.ID, &domain.RequestPatch{Status: &approved, QuotedPrice: &price})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, updated.Status)
	assert.Equal(t, 9000.0, updated.QuotedPrice)
	assert.False(t, updated.UpdatedAt.Before(created))
}

func TestCustomerUpsertByPhone(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c, err := store.Customers.UpsertByPhone(ctx, "Asha", "9876543210", "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, c.RequestCount)
	assert.Equal(t, domain.OriginLocal, c.Origin)

	// Same phone: name refreshed, blank email keeps the stored one.
	c, err = store.Customers.UpsertByPhone(ctx, "Asha Rao", "9876543210", "")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", c.Name)
	assert.Equal(t, "asha@example.com", c.Email)
	assert.Equal(t, 2, c.RequestCount)

	// New email replaces the old one.
	c, err = store.Customers.UpsertByPhone(ctx, "Asha Rao", "9876543210", "rao@example.com")
	require.NoError(t, err)
	assert.Equal(t, "rao@example.com", c.Email)
	assert.Equal(t, 3, c.RequestCount)

	customers, err := store.Customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestInvoicePersistence(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	inv := &domain.Invoice{
		InvoiceNumber: "INV-0001",
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		Items:         []domain.InvoiceItem{{ProductName: "lehenga", Days: 3, PricePerDay: 3000, Total: 9000}},
		Subtotal:      9000,
		Total:         9000,
		Status:        domain.InvoiceStatusDraft,
	}
	require.NoError(t, store.Invoices.Create(ctx, inv))
	assert.NotEmpty(t, inv.ID)

	n, err := store.Invoices.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := store.Invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", got.InvoiceNumber)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3000.0, got.Items[0].PricePerDay)

	_, err = store.Invoices.GetByRequestID(ctx, "nothing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sent := domain.InvoiceStatusSent
	updated, err := store.Invoices.Update(ctx, inv.ID, &domain.InvoicePatch{Status: &sent})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, updated.Status)

	deleted, err := store.Invoices.Delete(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	n, err = store.Invoices.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	p := &domain.Product{Name: "Saree", Category: domain.CategoryWomen}
	require.NoError(t, store.Products.Create(ctx, p))

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	got, err := reopened.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Saree", got.Name)
}
