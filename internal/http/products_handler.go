package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lilianobi/audiophile/internal/catalog"
	"github.com/Lilianobi/audiophile/internal/domain"
)

type ProductsHandler struct {
	catalog *catalog.Catalog
}

func NewProductsHandler(c *catalog.Catalog) *ProductsHandler {
	return &ProductsHandler{catalog: c}
}

type ProductsResponse struct {
	Products []*domain.Product `json:"products"`
}

// GET /api/products
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ProductsResponse{Products: h.catalog.All()})
}

// GET /api/products/{slug}
func (h *ProductsHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, ok := h.catalog.BySlug(slug)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// GET /api/products/{slug}/related
func (h *ProductsHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if _, ok := h.catalog.BySlug(slug); !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	respondJSON(w, http.StatusOK, ProductsResponse{Products: h.catalog.Related(slug)})
}

// GET /api/categories/{category}
func (h *ProductsHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(chi.URLParam(r, "category"))

	products := h.catalog.ByCategory(category)
	if len(products) == 0 {
		respondError(w, http.StatusNotFound, "not_found", "category not found")
		return
	}

	respondJSON(w, http.StatusOK, ProductsResponse{Products: products})
}
