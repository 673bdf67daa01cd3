package http

import (
	"net/http"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/service"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts serves both surfaces: the storefront filters by category and
// sees active products only; the admin console passes active=false to see
// everything.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	activeOnly := r.URL.Query().Get("active") != "false"
	products, err := h.catalog.ListProducts(r.Context(), category, activeOnly)
	if err != nil {
		respondError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if !decodeBody(w, r, &p) {
		return
	}
	if err := h.catalog.AddProduct(r.Context(), &p); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProductPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	p, err := h.catalog.UpdateProduct(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.catalog.DeleteProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	if !deleted {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
