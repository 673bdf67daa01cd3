package localstore

import (
	"context"
	"time"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"
)

type productRepository struct {
	fs *fileStore
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	products, err := read[domain.Product](r.fs, productsFile)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	sortByCreatedDesc(out, func(p domain.Product) time.Time { return p.CreatedAt })
	return out, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	products, err := read[domain.Product](r.fs, productsFile)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	products, err := read[domain.Product](r.fs, productsFile)
	if err != nil {
		return err
	}
	p.ID = generateID()
	p.Origin = domain.OriginLocal
	p.CreatedAt = time.Now().UTC()
	products = append(products, *p)
	return write(r.fs, productsFile, products)
}

func (r *productRepository) Update(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	products, err := read[domain.Product](r.fs, productsFile)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			patch.Apply(&products[i])
			if err := write(r.fs, productsFile, products); err != nil {
				return nil, err
			}
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	products, err := read[domain.Product](r.fs, productsFile)
	if err != nil {
		return false, err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return false, nil
	}
	return true, write(r.fs, productsFile, kept)
}
