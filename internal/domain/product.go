package domain

import "time"

// Product is a catalogue item. Timestamps are Unix epoch seconds;
// UpdatedAt stays nil until the first update.
type Product struct {
	ID          int64  `json:"id"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Stock       int64  `json:"stock"`
	Image       string `json:"image"`
	Status      bool   `json:"status"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   *int64 `json:"updatedAt"`
}

// NewProductParams carries the fields accepted when creating a product.
type NewProductParams struct {
	ProductName string
	Category    string
	Price       int64
	Description Optional[string]
	Stock       Optional[int64]
	Image       Optional[string]
}

// NewProduct builds an active product from p. Description and image default
// to empty, stock to zero.
func NewProduct(p NewProductParams, now time.Time) (*Product, error) {
	prod := &Product{
		ProductName: p.ProductName,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description.OrElse(""),
		Stock:       p.Stock.OrElse(0),
		Image:       p.Image.OrElse(""),
		Status:      true,
		CreatedAt:   now.Unix(),
	}
	if err := prod.Validate(); err != nil {
		return nil, err
	}
	return prod, nil
}

// Validate checks required fields and numeric ranges.
func (p *Product) Validate() error {
	var missing []string
	if p.ProductName == "" {
		missing = append(missing, "productName")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return NewMissingFieldsError(missing...)
	}
	if p.Price < 0 {
		return NewValidationError("price", "must not be negative", ErrValidation)
	}
	if p.Stock < 0 {
		return NewValidationError("stock", "must not be negative", ErrValidation)
	}
	return nil
}

// ProductPatch is a partial update. Only fields that are Set are applied;
// everything else keeps its stored value.
type ProductPatch struct {
	ProductName Optional[string]
	Category    Optional[string]
	Price       Optional[int64]
	Description Optional[string]
	Stock       Optional[int64]
	Image       Optional[string]
	Status      Optional[bool]
}

// Validate rejects provided values that would make the product invalid.
func (p ProductPatch) Validate() error {
	if v, ok := p.ProductName.Get(); ok && v == "" {
		return NewValidationError("productName", "must not be empty", ErrValidation)
	}
	if v, ok := p.Category.Get(); ok && v == "" {
		return NewValidationError("category", "must not be empty", ErrValidation)
	}
	if v, ok := p.Price.Get(); ok && v < 0 {
		return NewValidationError("price", "must not be negative", ErrValidation)
	}
	if v, ok := p.Stock.Get(); ok && v < 0 {
		return NewValidationError("stock", "must not be negative", ErrValidation)
	}
	return nil
}

// Apply copies every provided field onto prod and stamps UpdatedAt.
func (p ProductPatch) Apply(prod *Product, now time.Time) {
	prod.ProductName = p.ProductName.OrElse(prod.ProductName)
	prod.Category = p.Category.OrElse(prod.Category)
	prod.Price = p.Price.OrElse(prod.Price)
	prod.Description = p.Description.OrElse(prod.Description)
	prod.Stock = p.Stock.OrElse(prod.Stock)
	prod.Image = p.Image.OrElse(prod.Image)
	prod.Status = p.Status.OrElse(prod.Status)

	updated := now.Unix()
	prod.UpdatedAt = &updated
}
