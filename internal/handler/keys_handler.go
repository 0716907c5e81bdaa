package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/service"
)

type KeysHandler struct {
	svc *service.KeysService
}

func NewKeysHandler(s *service.KeysService) *KeysHandler { return &KeysHandler{svc: s} }

type keyRequest struct {
	KeyType string `json:"keyType"`
}

type keyResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key,omitempty"`
	Error   string `json:"error,omitempty"`
}

// @Summary Pedir una clave de servicio externo (openweather|stormglass|worldtides)
// @Tags keys
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body keyRequest true "tipo de clave"
// @Success 200 {object} keyResponse
// @Failure 401 {object} keyResponse "sin sesión válida"
// @Router /api/keys [post]
func (h *KeysHandler) RequestKey(w http.ResponseWriter, r *http.Request) {
	var req keyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.KeyType == "" {
		writeJSON(w, http.StatusBadRequest, keyResponse{Success: false, Error: "keyType is required"})
		return
	}

	key, err := h.svc.RequestKey(BearerToken(r), req.KeyType)
	if err != nil {
		status := http.StatusInternalServerError
		var valErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrAuthRequired):
			status = http.StatusUnauthorized
		case errors.As(err, &valErr):
			status = http.StatusBadRequest
		}
		writeJSON(w, status, keyResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, keyResponse{Success: true, Key: key})
}
