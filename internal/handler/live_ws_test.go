package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListingsWSRejectsPlainRequest(t *testing.T) {
	h := NewLiveHandler(nil, nil)

	// GET común, sin headers de upgrade: Upgrade responde el error él
	// mismo y el handler no debe escribir nada más
	rr := httptest.NewRecorder()
	h.ListingsWS(rr, httptest.NewRequest(http.MethodGet, "/ws/listings", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400, obtuve %d", rr.Code)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "websocket") {
		t.Errorf("esperaba el error del upgrade en el body: %q", body)
	}
	// una sola respuesta de error, sin segunda línea agregada después
	if n := strings.Count(strings.TrimRight(body, "\n"), "\n"); n != 0 {
		t.Errorf("el body debe tener una sola línea de error: %q", body)
	}
}
