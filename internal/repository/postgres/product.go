package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"
)

const productColumns = `id, name, description, image_url, additional_images, gif_url, model3d_url, price, discounted_price, category, sub_category, tag, inventory, is_active, created_at`

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	p := &domain.Product{Origin: domain.OriginRemote}
	var (
		images     []byte
		gifURL     sql.NullString
		model3dURL sql.NullString
		discounted sql.NullFloat64
		subCat     sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Image, &images, &gifURL, &model3dURL,
		&p.Price, &discounted, &p.Category, &subCat, &p.Tag, &p.Inventory, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.AdditionalImages); err != nil {
			return nil, fmt.Errorf("decode additional_images: %w", err)
		}
	}
	p.GifURL = gifURL.String
	p.Model3DURL = model3dURL.String
	p.SubCategory = subCat.String
	if discounted.Valid {
		p.DiscountedPrice = &discounted.Float64
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	where := ""
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = fmt.Sprintf(" WHERE category = $%d", len(args))
	}
	if filter.ActiveOnly {
		if where == "" {
			where = " WHERE is_active = true"
		} else {
			where += " AND is_active = true"
		}
	}
	query += where + " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	images, err := json.Marshal(p.AdditionalImages)
	if err != nil {
		return err
	}
	var discounted sql.NullFloat64
	if p.DiscountedPrice != nil {
		discounted = sql.NullFloat64{Float64: *p.DiscountedPrice, Valid: true}
	}
	query := `INSERT INTO products (name, description, image_url, additional_images, gif_url, model3d_url, price, discounted_price, category, sub_category, tag, inventory, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Image, images, nullable(p.GifURL), nullable(p.Model3DURL),
		p.Price, discounted, p.Category, nullable(p.SubCategory), p.Tag, p.Inventory, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return err
	}
	p.Origin = domain.OriginRemote
	return nil
}

func (r *productRepository) Update(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Image != nil {
		add("image_url", *patch.Image)
	}
	if patch.AdditionalImages != nil {
		images, err := json.Marshal(*patch.AdditionalImages)
		if err != nil {
			return nil, err
		}
		add("additional_images", images)
	}
	if patch.GifURL != nil {
		add("gif_url", nullable(*patch.GifURL))
	}
	if patch.Model3DURL != nil {
		add("model3d_url", nullable(*patch.Model3DURL))
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.DiscountedPrice != nil {
		add("discounted_price", *patch.DiscountedPrice)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.SubCategory != nil {
		add("sub_category", nullable(*patch.SubCategory))
	}
	if patch.Tag != nil {
		add("tag", *patch.Tag)
	}
	if patch.Inventory != nil {
		add("inventory", *patch.Inventory)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING `+productColumns,
		strings.Join(sets, ", "), len(args))
	row := r.db.QueryRowContext(ctx, query, args...)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func (r *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
