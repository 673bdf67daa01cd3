package domain

import "time"

type Category string

const (
	CategoryWomen       Category = "women"
	CategoryMen         Category = "men"
	CategoryJewellery   Category = "jewellery"
	CategoryPhotoshoots Category = "photoshoots"
)

// ValidCategory reports whether c is one of the fixed storefront categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryWomen, CategoryMen, CategoryJewellery, CategoryPhotoshoots:
		return true
	}
	return false
}

// SubCategorySuggestions lists the suggested sub-category labels shown per
// category in the admin console. Sub-category remains free text; these are
// suggestions only.
var SubCategorySuggestions = map[Category][]string{
	CategoryWomen:       {"Bridal Lehenga", "Heavy Gown", "Saree"},
	CategoryMen:         {"Sherwani", "Indo Western", "Suit"},
	CategoryJewellery:   {"Bridal Set", "Necklace", "Earrings"},
	CategoryPhotoshoots: {"Pre Wedding", "Maternity", "Portfolio"},
}

// Origin records which backend a row was created in. Rows created while no
// remote provider was configured carry local-format ids and must never be
// routed to the remote provider.
type Origin string

const (
	OriginRemote Origin = "remote"
	OriginLocal  Origin = "local"
)

type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Image            string    `json:"image"`
	AdditionalImages []string  `json:"additionalImages,omitempty"`
	GifURL           string    `json:"gifUrl,omitempty"`
	Model3DURL       string    `json:"model3dUrl,omitempty"`
	Price            float64   `json:"price"`
	DiscountedPrice  *float64  `json:"discountedPrice,omitempty"`
	Category         Category  `json:"category"`
	SubCategory      string    `json:"subCategory,omitempty"`
	Tag              string    `json:"tag"`
	Inventory        int       `json:"inventory"`
	IsActive         bool      `json:"isActive"`
	Origin           Origin    `json:"origin,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ProductPatch carries a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name             *string   `json:"name,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Image            *string   `json:"image,omitempty"`
	AdditionalImages *[]string `json:"additionalImages,omitempty"`
	GifURL           *string   `json:"gifUrl,omitempty"`
	Model3DURL       *string   `json:"model3dUrl,omitempty"`
	Price            *float64  `json:"price,omitempty"`
	DiscountedPrice  *float64  `json:"discountedPrice,omitempty"`
	Category         *Category `json:"category,omitempty"`
	SubCategory      *string   `json:"subCategory,omitempty"`
	Tag              *string   `json:"tag,omitempty"`
	Inventory        *int      `json:"inventory,omitempty"`
	IsActive         *bool     `json:"isActive,omitempty"`
}

// Apply merges the patch onto p.
func (patch *ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.AdditionalImages != nil {
		p.AdditionalImages = *patch.AdditionalImages
	}
	if patch.GifURL != nil {
		p.GifURL = *patch.GifURL
	}
	if patch.Model3DURL != nil {
		p.Model3DURL = *patch.Model3DURL
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.DiscountedPrice != nil {
		p.DiscountedPrice = patch.DiscountedPrice
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SubCategory != nil {
		p.SubCategory = *patch.SubCategory
	}
	if patch.Tag != nil {
		p.Tag = *patch.Tag
	}
	if patch.Inventory != nil {
		p.Inventory = *patch.Inventory
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
}
