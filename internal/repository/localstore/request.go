package localstore

import (
	"context"
	"time"

	"parnika-backend/internal/domain"
)

type requestRepository struct {
	fs *fileStore
}

func (r *requestRepository) List(ctx context.Context) ([]domain.RentalRequest, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	requests, err := read[domain.RentalRequest](r.fs, requestsFile)
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(requests, func(req domain.RentalRequest) time.Time { return req.CreatedAt })
	return requests, nil
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	requests, err := read[domain.RentalRequest](r.fs, requestsFile)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create stores a new request. Status and the financial fields are forced to
// their initial values no matter what the caller passed in.
func (r *requestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	requests, err := read[domain.RentalRequest](r.fs, requestsFile)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	req.ID = generateID()
	req.Origin = domain.OriginLocal
	req.Status = domain.RequestStatusPending
	req.AdminNotes = ""
	req.QuotedPrice = 0
	req.AdvancePaid = 0
	req.DepositAmount = 0
	req.CreatedAt = now
	req.UpdatedAt = now
	requests = append(requests, *req)
	return write(r.fs, requestsFile, requests)
}

func (r *requestRepository) Update(ctx context.Context, id string, patch *domain.RequestPatch) (*domain.RentalRequest, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	requests, err := read[domain.RentalRequest](r.fs, requestsFile)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			patch.Apply(&requests[i])
			requests[i].UpdatedAt = time.Now().UTC()
			if err := write(r.fs, requestsFile, requests); err != nil {
				return nil, err
			}
			return &requests[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
