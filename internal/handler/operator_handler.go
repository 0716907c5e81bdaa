package handler

import (
	"net/http"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/service"

	"github.com/go-chi/chi/v5"
)

type OperatorHandler struct {
	svc *service.OperatorService
}

func NewOperatorHandler(s *service.OperatorService) *OperatorHandler {
	return &OperatorHandler{svc: s}
}

// @Summary Detalle de un operator (con reviews y rating agregado)
// @Tags operators
// @Produce json
// @Param id path string true "operator id"
// @Success 200 {object} models.Operator
// @Router /api/operators/{id} [get]
func (h *OperatorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	op, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}
