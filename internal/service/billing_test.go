package service_test

import (
	"context"
	"testing"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository/localstore"
	"parnika-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBillingFixture() (*MockInvoiceRepo, *MockRequestRepo, *MockCustomerRepo, service.BillingService) {
	invoices := new(MockInvoiceRepo)
	requests := new(MockRequestRepo)
	customers := new(MockCustomerRepo)
	svc := service.NewBillingService(invoices, requests, customers)
	return invoices, requests, customers, svc
}

func TestCreateInvoiceFromRequest(t *testing.T) {
	invoices, requests, customers, svc := newBillingFixture()
	ctx := context.Background()

	pending := &domain.RentalRequest{
		ID:           "req-1",
		ProductID:    "prod-1",
		ProductName:  "Kanjivaram Saree",
		CustomerName: "Asha",
		Phone:        "9876543210",
		DaysRequired: 3,
		Status:       domain.RequestStatusPending,
	}

	invoices.On("GetByRequestID", ctx, "req-1").Return(nil, domain.ErrNotFound)
	requests.On("GetByID", ctx, "req-1").Return(pending, nil)
	customers.On("GetByPhone", ctx, "9876543210").
		Return(&domain.Customer{ID: "cust-1", Phone: "9876543210"}, nil)
	requests.On("Update", ctx, "req-1", mock.MatchedBy(func(patch *domain.RequestPatch) bool {
		return patch.Status != nil && *patch.Status == domain.RequestStatusApproved &&
			patch.QuotedPrice != nil && *patch.QuotedPrice == 9000 &&
			patch.DepositAmount != nil && *patch.DepositAmount == 2000
	})).Return(&domain.RentalRequest{
		ID:           "req-1",
		ProductID:    "prod-1",
		ProductName:  "Kanjivaram Saree",
		CustomerName: "Asha",
		Phone:        "9876543210",
		DaysRequired: 3,
		Status:       domain.RequestStatusApproved,
		QuotedPrice:  9000,
		AdvancePaid:  3000,
	}, nil)
	invoices.On("Count", ctx).Return(4, nil)
	invoices.On("Create", ctx, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.CreateInvoiceFromRequest(ctx, "req-1", service.FinanceDraft{
		QuotedPrice:   9000,
		AdvancePaid:   3000,
		DepositAmount: 2000,
		AdminNotes:    "pickup friday",
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-0005", inv.InvoiceNumber)
	assert.Equal(t, "cust-1", inv.CustomerID)
	assert.Len(t, inv.Items, 1)
	assert.Equal(t, "Kanjivaram Saree", inv.Items[0].ProductName)
	assert.Equal(t, 3, inv.Items[0].Days)
	assert.Equal(t, 3000.0, inv.Items[0].PricePerDay)
	assert.Equal(t, 9000.0, inv.Items[0].Total)
	assert.Equal(t, 9000.0, inv.Subtotal)
	assert.Equal(t, 9000.0, inv.Total)
	assert.Equal(t, 3000.0, inv.AdvancePaid)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)

	// The planned deposit is not carried as money received, only as a note.
	assert.Zero(t, inv.DepositAmount)
	assert.Equal(t, "Planned security deposit: ₹2,000", inv.Notes)

	requests.AssertExpectations(t)
	invoices.AssertExpectations(t)
}

func TestCreateInvoiceFromRequest_DuplicateGuard(t *testing.T) {
	invoices, _, _, svc := newBillingFixture()
	ctx := context.Background()

	invoices.On("GetByRequestID", ctx, "req-1").
		Return(&domain.Invoice{ID: "inv-1", RequestID: "req-1"}, nil)

	_, err := svc.CreateInvoiceFromRequest(ctx, "req-1", service.FinanceDraft{QuotedPrice: 5000})
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoice)
	invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateInvoiceFromRequest_CompletedStaysCompleted(t *testing.T) {
	invoices, requests, customers, svc := newBillingFixture()
	ctx := context.Background()

	done := &domain.RentalRequest{
		ID:           "req-2",
		OutfitType:   "lehenga",
		CustomerName: "Meera",
		Phone:        "9000000001",
		DaysRequired: 2,
		Status:       domain.RequestStatusCompleted,
	}

	invoices.On("GetByRequestID", ctx, "req-2").Return(nil, domain.ErrNotFound)
	requests.On("GetByID", ctx, "req-2").Return(done, nil)
	customers.On("GetByPhone", ctx, "9000000001").Return(nil, domain.ErrNotFound)
	requests.On("Update", ctx, "req-2", mock.MatchedBy(func(patch *domain.RequestPatch) bool {
		return patch.Status != nil && *patch.Status == domain.RequestStatusCompleted
	})).Return(done, nil)
	invoices.On("Count", ctx).Return(0, nil)
	invoices.On("Create", ctx, mock.Anything).Return(nil)

	inv, err := svc.CreateInvoiceFromRequest(ctx, "req-2", service.FinanceDraft{QuotedPrice: 4000})
	assert.NoError(t, err)
	assert.Equal(t, "INV-0001", inv.InvoiceNumber)
	// No customer row for the phone: invoice still created, link left empty.
	assert.Empty(t, inv.CustomerID)
	// Request had no product: the line item falls back to the outfit type.
	assert.Equal(t, "lehenga", inv.Items[0].ProductName)
	// No planned deposit, no note.
	assert.Empty(t, inv.Notes)
}

func TestCreateInvoiceFromRequest_ClampsDaysForPricePerDay(t *testing.T) {
	invoices, requests, customers, svc := newBillingFixture()
	ctx := context.Background()

	req := &domain.RentalRequest{
		ID:           "req-3",
		OutfitType:   "sherwani",
		CustomerName: "Ravi",
		Phone:        "9000000002",
		DaysRequired: 0,
		Status:       domain.RequestStatusPending,
	}

	invoices.On("GetByRequestID", ctx, "req-3").Return(nil, domain.ErrNotFound)
	requests.On("GetByID", ctx, "req-3").Return(req, nil)
	customers.On("GetByPhone", ctx, "9000000002").Return(nil, domain.ErrNotFound)
	requests.On("Update", ctx, "req-3", mock.Anything).Return(req, nil)
	invoices.On("Count", ctx).Return(12, nil)
	invoices.On("Create", ctx, mock.Anything).Return(nil)

	inv, err := svc.CreateInvoiceFromRequest(ctx, "req-3", service.FinanceDraft{QuotedPrice: 2500})
	assert.NoError(t, err)
	assert.Equal(t, "INV-0013", inv.InvoiceNumber)
	assert.Equal(t, 2500.0, inv.Items[0].PricePerDay)
}

func TestAdvanceInvoiceStatus(t *testing.T) {
	cases := []struct {
		name    string
		current domain.InvoiceStatus
		next    domain.InvoiceStatus
		ok      bool
	}{
		{"draft to sent", domain.InvoiceStatusDraft, domain.InvoiceStatusSent, true},
		{"sent to paid", domain.InvoiceStatusSent, domain.InvoiceStatusPaid, true},
		{"draft to paid skips a step", domain.InvoiceStatusDraft, domain.InvoiceStatusPaid, false},
		{"sent back to draft", domain.InvoiceStatusSent, domain.InvoiceStatusDraft, false},
		{"paid is terminal", domain.InvoiceStatusPaid, domain.InvoiceStatusSent, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			invoices, _, _, svc := newBillingFixture()
			ctx := context.Background()

			invoices.On("GetByID", ctx, "inv-1").
				Return(&domain.Invoice{ID: "inv-1", Status: tc.current}, nil)
			if tc.ok {
				invoices.On("Update", ctx, "inv-1", mock.Anything).
					Return(&domain.Invoice{ID: "inv-1", Status: tc.next}, nil)
			}

			inv, err := svc.AdvanceInvoiceStatus(ctx, "inv-1", tc.next)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.next, inv.Status)
			} else {
				assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
			}
		})
	}
}

func TestAdvanceInvoiceStatus_UnknownStatus(t *testing.T) {
	_, _, _, svc := newBillingFixture()
	_, err := svc.AdvanceInvoiceStatus(context.Background(), "inv-1", domain.InvoiceStatus("void"))
	assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
}

func TestUpdateInvoice_RejectsStatusChange(t *testing.T) {
	_, _, _, svc := newBillingFixture()
	sent := domain.InvoiceStatusSent
	_, err := svc.UpdateInvoice(context.Background(), "inv-1", &domain.InvoicePatch{Status: &sent})
	assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
}

func TestUpdateInvoice_EditsDepositAfterPickup(t *testing.T) {
	invoices, _, _, svc := newBillingFixture()
	ctx := context.Background()

	deposit := 2000.0
	invoices.On("Update", ctx, "inv-1", mock.MatchedBy(func(patch *domain.InvoicePatch) bool {
		return patch.Status == nil && patch.DepositAmount != nil && *patch.DepositAmount == 2000
	})).Return(&domain.Invoice{ID: "inv-1", DepositAmount: 2000}, nil)

	inv, err := svc.UpdateInvoice(ctx, "inv-1", &domain.InvoicePatch{DepositAmount: &deposit})
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, inv.DepositAmount)
}

func TestBalanceDue(t *testing.T) {
	assert.Equal(t, 6000.0, service.BalanceDue(&domain.Invoice{Total: 9000, AdvancePaid: 3000}))
	assert.Equal(t, 0.0, service.BalanceDue(&domain.Invoice{Total: 9000, AdvancePaid: 9000}))
	// Overpayment clamps to zero rather than going negative.
	assert.Equal(t, 0.0, service.BalanceDue(&domain.Invoice{Total: 9000, AdvancePaid: 10000}))
}

func TestTotalReceived(t *testing.T) {
	assert.Equal(t, 5000.0, service.TotalReceived(3000, 2000))
	assert.Equal(t, 3000.0, service.TotalReceived(3000, 0))
	assert.Equal(t, 0.0, service.TotalReceived(0, 0))
}

// Numbering counts the invoices that exist at creation time. Deleting an
// earlier invoice shrinks the count, so the next creation hands out a number
// the surviving invoice already carries.
func TestInvoiceNumbering_ReusesNumberAfterDelete(t *testing.T) {
	store, err := localstore.NewStore(t.TempDir())
	require.NoError(t, err)
	svc := service.NewBillingService(store.Invoices, store.Requests, store.Customers)
	ctx := context.Background()

	newRequest := func(phone string) string {
		req := &domain.RentalRequest{
			CustomerName: "Asha",
			Phone:        phone,
			EventDate:    "2026-10-12",
			DaysRequired: 2,
			OutfitType:   "saree",
		}
		require.NoError(t, store.Requests.Create(ctx, req))
		return req.ID
	}

	first, err := svc.CreateInvoiceFromRequest(ctx, newRequest("9000000001"), service.FinanceDraft{QuotedPrice: 4000})
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", first.InvoiceNumber)

	second, err := svc.CreateInvoiceFromRequest(ctx, newRequest("9000000002"), service.FinanceDraft{QuotedPrice: 5000})
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", second.InvoiceNumber)

	deleted, err := svc.DeleteInvoice(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	third, err := svc.CreateInvoiceFromRequest(ctx, newRequest("9000000003"), service.FinanceDraft{QuotedPrice: 6000})
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", third.InvoiceNumber)
	assert.Equal(t, second.InvoiceNumber, third.InvoiceNumber)
}
