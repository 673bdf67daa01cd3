package service

import (
	"context"
	"errors"
	"fmt"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/logger"
	"parnika-backend/internal/repository"
)

var (
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRequestHasInvoice guards approve/reject once billing has started.
	ErrRequestHasInvoice = errors.New("request already has an invoice")
)

type rentalService struct {
	requests  repository.RequestRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	emailSvc  EmailService
}

func NewRentalService(
	requests repository.RequestRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		requests:  requests,
		products:  products,
		customers: customers,
		invoices:  invoices,
		emailSvc:  emailSvc,
	}
}

func (s *rentalService) CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.RentalRequest, error) {
	if input.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidRequest)
	}
	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidRequest)
	}
	if input.EventDate == "" {
		return nil, fmt.Errorf("%w: event date is required", ErrInvalidRequest)
	}
	if input.DaysRequired < 1 {
		return nil, fmt.Errorf("%w: days required must be at least 1", ErrInvalidRequest)
	}
	if input.ProductID == "" && input.OutfitType == "" {
		return nil, fmt.Errorf("%w: a product or an outfit type is required", ErrInvalidRequest)
	}

	productName := ""
	if input.ProductID != "" {
		product, err := s.products.GetByID(ctx, input.ProductID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			// Stale product reference; keep the request, drop the link.
			input.ProductID = ""
		} else {
			productName = product.Name
		}
	}

	outfitType := input.OutfitType
	if outfitType == "" {
		outfitType = "other"
	}

	req := &domain.RentalRequest{
		ProductID:    input.ProductID,
		ProductName:  productName,
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Email:        input.Email,
		EventDate:    input.EventDate,
		DaysRequired: input.DaysRequired,
		OutfitType:   outfitType,
		Message:      input.Message,
		Status:       domain.RequestStatusPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Every request upserts the customer under its phone number. A failure
	// here is logged and must not fail the already-created request.
	if _, err := s.customers.UpsertByPhone(ctx, input.CustomerName, input.Phone, input.Email); err != nil {
		logger.Error("customer upsert after request creation failed", "phone", input.Phone, "error", err)
	}

	if err := s.emailSvc.SendRequestNotification(ctx, req); err != nil {
		logger.Warn("request notification email failed", "requestId", req.ID, "error", err)
	}

	return req, nil
}

func (s *rentalService) ListRequests(ctx context.Context) ([]domain.RentalRequest, error) {
	return s.requests.List(ctx)
}

func (s *rentalService) GetRequest(ctx context.Context, id string) (*domain.RentalRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *rentalService) UpdateRequest(ctx context.Context, id string, patch *domain.RequestPatch) (*domain.RentalRequest, error) {
	if patch.Status != nil {
		if !domain.ValidRequestStatus(*patch.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, *patch.Status)
		}
		// Approve and reject are only meaningful before billing has started.
		// Completion stays reachable from any state.
		if *patch.Status == domain.RequestStatusApproved || *patch.Status == domain.RequestStatusRejected {
			_, err := s.invoices.GetByRequestID(ctx, id)
			if err == nil {
				return nil, ErrRequestHasInvoice
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
		}
	}
	if patch.QuotedPrice != nil && *patch.QuotedPrice < 0 {
		return nil, fmt.Errorf("%w: quoted price must not be negative", ErrInvalidRequest)
	}
	if patch.AdvancePaid != nil && *patch.AdvancePaid < 0 {
		return nil, fmt.Errorf("%w: advance must not be negative", ErrInvalidRequest)
	}
	if patch.DepositAmount != nil && *patch.DepositAmount < 0 {
		return nil, fmt.Errorf("%w: deposit must not be negative", ErrInvalidRequest)
	}
	return s.requests.Update(ctx, id, patch)
}
