package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/service"

	"github.com/go-chi/chi/v5"
)

type POIHandler struct {
	svc *service.POIService
}

func NewPOIHandler(s *service.POIService) *POIHandler { return &POIHandler{svc: s} }

// @Summary Buscar puntos de interés (vía de filtros simples)
// @Tags pois
// @Produce json
// @Param category query string false "categoría del set cerrado o 'all'"
// @Param q query string false "búsqueda por nombre o descripción"
// @Param featured query bool false "solo destacados"
// @Param limit query int false "límite"
// @Success 200 {array} models.PointOfInterest
// @Router /api/pois [get]
func (h *POIHandler) Query(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := repository.POIQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
		Featured: r.URL.Query().Get("featured") == "true",
		Limit:    int64(limit),
	}

	pois, err := h.svc.Query(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pois)
}

// @Summary POIs relevantes "ahora mismo" (procedimiento server-side)
// @Tags pois
// @Produce json
// @Param time query string true "hora del día HH:MM:SS"
// @Param tags query string false "tags requeridos separados por coma"
// @Success 200 {array} models.PointOfInterest
// @Router /api/pois/relevant [get]
func (h *POIHandler) Relevant(w http.ResponseWriter, r *http.Request) {
	timeInput := r.URL.Query().Get("time")

	var tags []string
	if raw := r.URL.Query().Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	pois, err := h.svc.RelevantNow(r.Context(), timeInput, tags)
	if err != nil {
		// sin fallback a la vía de filtros: el error viaja explícito
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pois)
}

// @Summary Detalle de un POI
// @Tags pois
// @Produce json
// @Param id path string true "poi id"
// @Success 200 {object} models.PointOfInterest
// @Router /api/pois/{id} [get]
func (h *POIHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	poi, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, poi)
}
