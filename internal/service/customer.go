package service

import (
	"context"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"
)

type customerService struct {
	customers repository.CustomerRepository
	requests  repository.RequestRepository
}

func NewCustomerService(customers repository.CustomerRepository, requests repository.RequestRepository) CustomerService {
	return &customerService{customers: customers, requests: requests}
}

// ListCustomers folds the request history into each customer at read time:
// totalSpent is the sum of quoted prices over that phone's completed
// requests, requestCount the number of requests under the phone. The stored
// columns are not treated as authoritative.
func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}

	spent := make(map[string]float64)
	count := make(map[string]int)
	for _, req := range requests {
		count[req.Phone]++
		if req.Status == domain.RequestStatusCompleted {
			spent[req.Phone] += req.QuotedPrice
		}
	}
	for i := range customers {
		customers[i].TotalSpent = spent[customers[i].Phone]
		customers[i].RequestCount = count[customers[i].Phone]
	}
	return customers, nil
}

func (s *customerService) GetCustomerRequests(ctx context.Context, phone string) ([]domain.RentalRequest, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.RentalRequest
	for _, req := range requests {
		if req.Phone == phone {
			out = append(out, req)
		}
	}
	return out, nil
}
