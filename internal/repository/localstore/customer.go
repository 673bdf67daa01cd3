package localstore

import (
	"context"
	"time"

	"parnika-backend/internal/domain"
)

type customerRepository struct {
	fs *fileStore
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	customers, err := read[domain.Customer](r.fs, customersFile)
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(customers, func(c domain.Customer) time.Time { return c.CreatedAt })
	return customers, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	customers, err := read[domain.Customer](r.fs, customersFile)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].Phone == phone {
			return &customers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *customerRepository) UpsertByPhone(ctx context.Context, name, phone, email string) (*domain.Customer, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	customers, err := read[domain.Customer](r.fs, customersFile)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].Phone == phone {
			customers[i].Name = name
			if email != "" {
				customers[i].Email = email
			}
			customers[i].RequestCount++
			if err := write(r.fs, customersFile, customers); err != nil {
				return nil, err
			}
			return &customers[i], nil
		}
	}
	c := domain.Customer{
		ID:           generateID(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		RequestCount: 1,
		Origin:       domain.OriginLocal,
		CreatedAt:    time.Now().UTC(),
	}
	customers = append(customers, c)
	if err := write(r.fs, customersFile, customers); err != nil {
		return nil, err
	}
	return &c, nil
}
