package api

import (
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/service"
)

// ProductHandler handles the product catalogue.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if len(products) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "No products found")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "", products)
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "", product)
}

// Create handles POST /products/create.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	product, err := h.products.Create(r.Context(), req.params())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusCreated, "Product created successfully", product)
}

// Update handles PUT /products/update/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	product, err := h.products.Update(r.Context(), id, req.patch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Product updated successfully", product)
}

// Delete handles DELETE /products/delete/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Product deleted successfully", nil)
}
