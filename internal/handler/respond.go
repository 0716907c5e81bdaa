package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError mapea la taxonomía de errores a HTTP. El estado de error va
// en un shape propio, distinguible de "cargando" y de "resultado vacío"
// del lado de la UI.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var valErr *models.ValidationError
	switch {
	case errors.As(err, &valErr):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrAuthRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrNoRecord):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrDuplicateEmail):
		status = http.StatusConflict
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
