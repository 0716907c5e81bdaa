package repository

import (
	"context"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OperatorRepository struct {
	exec  *store.Executor
	retry store.RetryPolicy
}

func NewOperatorRepository(exec *store.Executor) *OperatorRepository {
	return &OperatorRepository{exec: exec, retry: store.DefaultRetryPolicy()}
}

// GetByID devuelve un operator público con sus reviews y rating agregado.
// Misma visibilidad que los listings: solo active/approved.
func (r *OperatorRepository) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &models.ValidationError{Msg: "invalid operator id"}
	}

	ctx, cancel := context.WithTimeout(ctx, store.RelationalTimeout)
	defer cancel()

	sq := store.Query{
		Collection: "operators",
		Filter: bson.M{
			"_id":    oid,
			"status": bson.M{"$in": []string{"active", "approved"}},
		},
	}

	var op models.Operator
	err = r.retry.Do(ctx, func(ctx context.Context) error {
		return r.exec.RunOne(ctx, sq, &op)
	})
	if err != nil {
		return nil, err
	}

	rq := store.Query{
		Collection: "reviews",
		Filter:     bson.M{"operator_id": op.ID.Hex()},
		Sort:       bson.D{{Key: "created_at", Value: -1}},
	}

	var reviews []models.Review
	err = r.retry.Do(ctx, func(ctx context.Context) error {
		reviews = nil
		return r.exec.Run(ctx, rq, &reviews)
	})
	if err != nil {
		return nil, err
	}

	attachOperatorRating(&op, reviews, true)
	return &op, nil
}

// attachOperatorRating calcula el rating del operator desde sus reviews.
// Con withReviews en false las reviews crudas no van en la vista pública,
// solo el valor agregado.
func attachOperatorRating(op *models.Operator, reviews []models.Review, withReviews bool) {
	op.AverageRating = AverageRating(reviews)
	if withReviews {
		op.Reviews = reviews
	} else {
		op.Reviews = nil
	}
}
