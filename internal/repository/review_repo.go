package repository

import (
	"context"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

type ReviewRepository struct {
	exec  *store.Executor
	retry store.RetryPolicy
}

func NewReviewRepository(exec *store.Executor) *ReviewRepository {
	return &ReviewRepository{exec: exec, retry: store.DefaultRetryPolicy()}
}

// For trae las reviews de un listing O de un operator, las más nuevas
// primero. Sin ninguno de los dos ids el pedido es insatisfacible y se
// corta acá, antes de tocar la red.
func (r *ReviewRepository) For(ctx context.Context, listingID, operatorID string) ([]models.Review, error) {
	if listingID == "" && operatorID == "" {
		return nil, &models.ValidationError{Msg: "either listingId or operatorId is required"}
	}

	filter := bson.M{}
	if listingID != "" {
		filter["listing_id"] = listingID
	}
	if operatorID != "" {
		filter["operator_id"] = operatorID
	}

	sq := store.Query{
		Collection: "reviews",
		Filter:     filter,
		Sort:       bson.D{{Key: "created_at", Value: -1}},
	}

	var reviews []models.Review
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		reviews = nil
		return r.exec.Run(ctx, sq, &reviews)
	})
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}
