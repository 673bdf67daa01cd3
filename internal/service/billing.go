package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"
)

var ErrInvalidStatusTransition = errors.New("invalid invoice status transition")

type billingService struct {
	invoices  repository.InvoiceRepository
	requests  repository.RequestRepository
	customers repository.CustomerRepository
}

func NewBillingService(
	invoices repository.InvoiceRepository,
	requests repository.RequestRepository,
	customers repository.CustomerRepository,
) BillingService {
	return &billingService{invoices: invoices, requests: requests, customers: customers}
}

// CreateInvoiceFromRequest derives the one invoice a request can have.
//
// The admin's current financial drafts are persisted onto the request first,
// and the request is approved unless it is already completed. The invoice
// then carries a single line item priced from the quote. The advance is
// copied as actually received; the planned security deposit is NOT — it is
// collected in person at pickup, so the invoice starts with depositAmount
// zero and the planned figure survives only as a note.
func (s *billingService) CreateInvoiceFromRequest(ctx context.Context, requestID string, draft FinanceDraft) (*domain.Invoice, error) {
	if _, err := s.invoices.GetByRequestID(ctx, requestID); err == nil {
		return nil, domain.ErrDuplicateInvoice
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// Best-effort customer link; a missing customer does not block billing.
	customerID := ""
	if customer, err := s.customers.GetByPhone(ctx, req.Phone); err == nil {
		customerID = customer.ID
	}

	status := domain.RequestStatusApproved
	if req.Status == domain.RequestStatusCompleted {
		status = domain.RequestStatusCompleted
	}
	req, err = s.requests.Update(ctx, requestID, &domain.RequestPatch{
		Status:        &status,
		QuotedPrice:   &draft.QuotedPrice,
		AdvancePaid:   &draft.AdvancePaid,
		DepositAmount: &draft.DepositAmount,
		AdminNotes:    &draft.AdminNotes,
	})
	if err != nil {
		return nil, fmt.Errorf("persist finance draft: %w", err)
	}

	days := req.DaysRequired
	if days < 1 {
		days = 1
	}
	displayName := req.ProductName
	if displayName == "" {
		displayName = req.OutfitType
	}

	count, err := s.invoices.Count(ctx)
	if err != nil {
		return nil, err
	}

	notes := ""
	if draft.DepositAmount > 0 {
		notes = fmt.Sprintf("Planned security deposit: ₹%s", formatINR(draft.DepositAmount))
	}

	inv := &domain.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%04d", count+1),
		RequestID:     req.ID,
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.Phone,
		Items: []domain.InvoiceItem{{
			ProductID:   req.ProductID,
			ProductName: displayName,
			Days:        req.DaysRequired,
			PricePerDay: draft.QuotedPrice / float64(days),
			Total:       draft.QuotedPrice,
		}},
		Subtotal:      draft.QuotedPrice,
		Discount:      0,
		Total:         draft.QuotedPrice,
		AdvancePaid:   draft.AdvancePaid,
		DepositAmount: 0,
		Status:        domain.InvoiceStatusDraft,
		Notes:         notes,
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

func (s *billingService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *billingService) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *billingService) AdvanceInvoiceStatus(ctx context.Context, id string, next domain.InvoiceStatus) (*domain.Invoice, error) {
	if !domain.ValidInvoiceStatus(next) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, next)
	}
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := inv.Status == domain.InvoiceStatusDraft && next == domain.InvoiceStatusSent ||
		inv.Status == domain.InvoiceStatusSent && next == domain.InvoiceStatusPaid
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, inv.Status, next)
	}
	return s.invoices.Update(ctx, id, &domain.InvoicePatch{Status: &next})
}

func (s *billingService) UpdateInvoice(ctx context.Context, id string, patch *domain.InvoicePatch) (*domain.Invoice, error) {
	if patch.Status != nil {
		return nil, fmt.Errorf("%w: status changes go through the status endpoint", ErrInvalidStatusTransition)
	}
	return s.invoices.Update(ctx, id, patch)
}

func (s *billingService) DeleteInvoice(ctx context.Context, id string) (bool, error) {
	return s.invoices.Delete(ctx, id)
}

// BalanceDue is the rental amount still owed, clamped at zero when overpaid.
func BalanceDue(inv *domain.Invoice) float64 {
	due := inv.Total - inv.AdvancePaid
	if due < 0 {
		return 0
	}
	return due
}

// TotalReceived is the money actually in hand: the advance plus the deposit
// collected so far.
func TotalReceived(advance, deposit float64) float64 {
	return advance + deposit
}

// refundAmount is the deposit refund receipt figure: the entered amount when
// given, otherwise the deposit stored on the invoice.
func refundAmount(inv *domain.Invoice, entered *float64) float64 {
	if entered != nil {
		return *entered
	}
	return inv.DepositAmount
}

// formatINR renders an amount with Indian digit grouping: the last three
// digits, then groups of two (1234567 -> 12,34,567).
func formatINR(amount float64) string {
	whole := strconv.FormatFloat(amount, 'f', 0, 64)
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	if len(whole) > 3 {
		head := whole[:len(whole)-3]
		tail := whole[len(whole)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		whole = strings.Join(append(groups, tail), ",")
	}
	if neg {
		whole = "-" + whole
	}
	return whole
}
