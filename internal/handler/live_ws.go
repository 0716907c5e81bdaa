package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/realtime"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/service"

	"github.com/gorilla/websocket"
)

// upgrader global (mismos defaults para todos los WS)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type LiveHandler struct {
	listings *repository.ListingRepository
	inv      *realtime.Invalidator
}

func NewLiveHandler(listings *repository.ListingRepository, inv *realtime.Invalidator) *LiveHandler {
	return &LiveHandler{listings: listings, inv: inv}
}

// Mensaje entrante por el WS para re-establecer parámetros de la query.
type liveParams struct {
	Category string `json:"category"`
	Search   string `json:"q"`
	Sort     string `json:"sort"`
	Limit    int64  `json:"limit"`
}

func (p liveParams) toQuery() repository.ListingQuery {
	return repository.ListingQuery{
		Category: p.Category,
		Search:   p.Search,
		Sort:     p.Sort,
		Limit:    p.Limit,
	}
}

// @Summary Query viva de listings por WebSocket
// @Tags listings
// @Produce json
// @Param category query string false "categoría exacta o 'all'"
// @Param q query string false "búsqueda por título o descripción"
// @Param sort query string false "newest|price-asc|price-desc|rating"
// @Param limit query int false "límite (default: 12)"
// @Success 200 {object} map[string]interface{}
// @Router /ws/listings [get]
func (h *LiveHandler) ListingsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade ya respondió el error HTTP, acá solo se registra
		log.Printf("[ws] upgrade falló: %v", err)
		return
	}
	defer conn.Close()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	params := liveParams{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
		Sort:     r.URL.Query().Get("sort"),
		Limit:    int64(limit),
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// una query viva por conexión, con su propia suscripción al change feed
	feed := service.NewListingFeed(h.listings, h.inv)
	go feed.Run(ctx, params.toQuery())

	// el reader solo acepta cambios de parámetros y detecta el cierre
	go func() {
		defer cancel()
		for {
			var p liveParams
			if err := conn.ReadJSON(&p); err != nil {
				return
			}
			if err := feed.SetParams(ctx, p.toQuery()); err != nil {
				return
			}
		}
	}()

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "conexión abierta, query viva iniciada",
	})

	for snap := range feed.Updates() {
		msg := map[string]any{
			"type":       "snapshot",
			"generation": snap.Generation,
			"listings":   snap.Listings,
		}
		if snap.Error != "" {
			msg["type"] = "error"
			msg["error"] = snap.Error
		}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
