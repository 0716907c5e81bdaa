package handler

import (
	"net/http"
	"strconv"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/service"

	"github.com/go-chi/chi/v5"
)

type ListingHandler struct {
	svc *service.ListingService
}

func NewListingHandler(s *service.ListingService) *ListingHandler { return &ListingHandler{svc: s} }

// @Summary Buscar / listar listings públicos
// @Tags listings
// @Produce json
// @Param category query string false "categoría exacta o 'all'"
// @Param q query string false "búsqueda por título o descripción"
// @Param sort query string false "newest|price-asc|price-desc|rating (default: newest)"
// @Param limit query int false "límite (default: 12)"
// @Param include_reviews query bool false "adjuntar reviews crudas"
// @Success 200 {array} models.Listing
// @Router /api/listings [get]
func (h *ListingHandler) Query(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := repository.ListingQuery{
		Category:    r.URL.Query().Get("category"),
		Search:      r.URL.Query().Get("q"),
		Sort:        r.URL.Query().Get("sort"),
		Limit:       int64(limit),
		WithReviews: r.URL.Query().Get("include_reviews") == "true",
	}

	listings, err := h.svc.Query(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// @Summary Listings destacados
// @Tags listings
// @Produce json
// @Param limit query int false "límite (default: 12)"
// @Success 200 {array} models.Listing
// @Router /api/listings/featured [get]
func (h *ListingHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	listings, err := h.svc.Featured(r.Context(), int64(limit))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// @Summary Detalle de un listing (con reviews y rating agregado)
// @Tags listings
// @Produce json
// @Param id path string true "listing id"
// @Success 200 {object} models.Listing
// @Router /api/listings/{id} [get]
func (h *ListingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}
