package service

import (
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filas sintéticas para desarrollo. Se devuelven solo cuando una query de
// listings falla y APP_ENV != production; nunca llegan a un build de
// producción.
func fallbackListings(q repository.ListingQuery) []models.Listing {
	price := func(v float64) *float64 { return &v }
	now := time.Now().UTC()

	rows := []models.Listing{
		{
			ID:          primitive.NewObjectID(),
			Category:    "activity",
			Status:      models.ListingStatusActive,
			Title:       "Kitesurf lesson at Galu Beach",
			Description: "Two hour beginner kitesurf session with certified instructor.",
			Price:       price(4500),
			PriceUnit:   "per person",
			Images:      []string{"https://placehold.co/640x480?text=kitesurf"},
			Featured:    true,
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Category:    "tour",
			Status:      models.ListingStatusActive,
			Title:       "Colobus monkey forest walk",
			Description: "Guided walk through the coastal forest with a local naturalist.",
			Price:       price(2000),
			PriceUnit:   "per person",
			Images:      []string{"https://placehold.co/640x480?text=forest"},
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Category:    "accommodation",
			Status:      models.ListingStatusApproved,
			Title:       "Beachfront cottage",
			Description: "Self-catering cottage a short walk from the reef.",
			Price:       nil, // precio a consultar
			Images:      []string{"https://placehold.co/640x480?text=cottage"},
			CreatedAt:   now.Add(-12 * time.Hour),
			UpdatedAt:   now,
		},
	}

	if q.Limit > 0 && int64(len(rows)) > q.Limit {
		rows = rows[:q.Limit]
	}
	return rows
}
