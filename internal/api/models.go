package api

import (
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/service"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (req RegisterRequest) input() service.RegisterInput {
	return service.RegisterInput{Username: req.Username, Email: req.Email, Password: req.Password}
}

// LoginRequest is the body of POST /auth/login. Either Email or Username
// identifies the account; the service enforces that one is present.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req LoginRequest) input() service.LoginInput {
	return service.LoginInput{Email: req.Email, Username: req.Username, Password: req.Password}
}

// LoginResponseData is the data member of a successful login envelope.
type LoginResponseData struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UpdateUserRequest is the body of PUT /users/update/{id}.
type UpdateUserRequest struct {
	Username string `json:"username"`
}

// CreateProductRequest is the body of POST /products/create. Price and stock
// accept numbers or numeric strings; a price of 0 is valid but an empty one
// counts as missing.
type CreateProductRequest struct {
	ProductName string                          `json:"productName" validate:"required"`
	Category    string                          `json:"category"    validate:"required"`
	Price       domain.Optional[domain.FlexInt] `json:"price"       validate:"present"`
	Description domain.Optional[string]         `json:"description"`
	Stock       domain.Optional[domain.FlexInt] `json:"stock"`
	Image       domain.Optional[string]         `json:"image"`
}

func (req CreateProductRequest) params() domain.NewProductParams {
	return domain.NewProductParams{
		ProductName: req.ProductName,
		Category:    req.Category,
		Price:       req.Price.Value.Int64(),
		Description: req.Description,
		Stock:       flexToInt(req.Stock),
		Image:       req.Image,
	}
}

// UpdateProductRequest is the body of PUT /products/update/{id}. Omitted or
// null fields keep their stored values, as does an empty price or stock.
type UpdateProductRequest struct {
	ProductName domain.Optional[string]         `json:"productName"`
	Category    domain.Optional[string]         `json:"category"`
	Price       domain.Optional[domain.FlexInt] `json:"price"`
	Description domain.Optional[string]         `json:"description"`
	Stock       domain.Optional[domain.FlexInt] `json:"stock"`
	Image       domain.Optional[string]         `json:"image"`
	Status      domain.Optional[bool]           `json:"status"`
}

func (req UpdateProductRequest) patch() domain.ProductPatch {
	return domain.ProductPatch{
		ProductName: req.ProductName,
		Category:    req.Category,
		Price:       flexToInt(req.Price),
		Description: req.Description,
		Stock:       flexToInt(req.Stock),
		Image:       req.Image,
		Status:      req.Status,
	}
}

func flexToInt(o domain.Optional[domain.FlexInt]) domain.Optional[int64] {
	if v, ok := o.Get(); ok {
		return domain.Some(v.Int64())
	}
	return domain.Optional[int64]{}
}
