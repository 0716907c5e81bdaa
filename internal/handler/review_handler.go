package handler

import (
	"net/http"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/service"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler { return &ReviewHandler{svc: s} }

type reviewListResponse struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
}

// @Summary Reviews de un listing u operator
// @Tags reviews
// @Produce json
// @Param listing_id query string false "listing id"
// @Param operator_id query string false "operator id"
// @Success 200 {object} reviewListResponse
// @Failure 400 {object} map[string]string "falta listing_id y operator_id"
// @Router /api/reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get("listing_id")
	operatorID := r.URL.Query().Get("operator_id")

	reviews, avg, err := h.svc.For(r.Context(), listingID, operatorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewListResponse{Reviews: reviews, AverageRating: avg})
}
