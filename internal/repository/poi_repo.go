package repository

import (
	"context"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type POIRepository struct {
	exec  *store.Executor
	retry store.RetryPolicy
}

func NewPOIRepository(exec *store.Executor) *POIRepository {
	return &POIRepository{exec: exec, retry: store.DefaultRetryPolicy()}
}

// Query es la vía de filtros simples (categoría / búsqueda / destacados).
// La vía de relevancia por hora vive en el servicio y nunca pasa por acá.
func (r *POIRepository) Query(ctx context.Context, q POIQuery) ([]models.PointOfInterest, error) {
	if q.Category != "" && q.Category != CategoryAll && !models.IsValidPOICategory(q.Category) {
		return nil, &models.ValidationError{Msg: "unknown poi category: " + q.Category}
	}

	sq := store.Query{
		Collection: "pois",
		Filter:     buildPOIFilter(q),
		Sort:       bson.D{{Key: "created_at", Value: -1}},
		Limit:      q.Limit,
	}

	var pois []models.PointOfInterest
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		pois = nil
		return r.exec.Run(ctx, sq, &pois)
	})
	if err != nil {
		return nil, err
	}
	if pois == nil {
		pois = []models.PointOfInterest{}
	}
	return pois, nil
}

func (r *POIRepository) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &models.ValidationError{Msg: "invalid poi id"}
	}

	sq := store.Query{
		Collection: "pois",
		Filter:     bson.M{"_id": oid},
	}

	var poi models.PointOfInterest
	err = r.retry.Do(ctx, func(ctx context.Context) error {
		return r.exec.RunOne(ctx, sq, &poi)
	})
	if err != nil {
		return nil, err
	}
	return &poi, nil
}

// All trae todos los POIs; lo usa el nodo de relevancia para evaluar el
// matching del lado del servidor.
func (r *POIRepository) All(ctx context.Context) ([]models.PointOfInterest, error) {
	return r.Query(ctx, POIQuery{})
}
