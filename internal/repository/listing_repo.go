package repository

import (
	"context"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingRepository struct {
	exec  *store.Executor
	retry store.RetryPolicy
}

func NewListingRepository(exec *store.Executor) *ListingRepository {
	return &ListingRepository{exec: exec, retry: store.DefaultRetryPolicy()}
}

// Query ejecuta una lectura compuesta: listings que matchean el pedido más
// sus reviews, agregadas a un rating por fila. El orden por rating y el
// ajuste de precios null se aplican client-side, el resto lo resuelve el
// store.
func (r *ListingRepository) Query(ctx context.Context, q ListingQuery) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, store.RelationalTimeout)
	defer cancel()

	var (
		listings []models.Listing
		err      error
	)
	if q.Sort == SortPriceAsc || q.Sort == SortPriceDesc {
		listings, err = r.queryByPrice(ctx, q)
	} else {
		sq := store.Query{
			Collection: "listings",
			Filter:     buildListingFilter(q),
			Sort:       buildListingSort(q.Sort),
			Limit:      q.limit(),
		}
		err = r.retry.Do(ctx, func(ctx context.Context) error {
			listings = nil
			return r.exec.Run(ctx, sq, &listings)
		})
	}
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return []models.Listing{}, nil
	}

	if err := r.attachRatings(ctx, listings, q.WithReviews); err != nil {
		return nil, err
	}

	if q.Sort == SortRating {
		sortListingsByRating(listings)
	}
	return listings, nil
}

// queryByPrice resuelve el orden por precio en dos lecturas: primero las
// filas con precio (el store las ordena bien), y si queda cupo del límite,
// las filas sin precio al final. Así un listing "precio a consultar" nunca
// desplaza del límite a uno con precio real.
func (r *ListingRepository) queryByPrice(ctx context.Context, q ListingQuery) ([]models.Listing, error) {
	pricedFilter, unpricedFilter := priceFilters(q)

	sq := store.Query{
		Collection: "listings",
		Filter:     pricedFilter,
		Sort:       buildListingSort(q.Sort),
		Limit:      q.limit(),
	}

	var priced []models.Listing
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		priced = nil
		return r.exec.Run(ctx, sq, &priced)
	})
	if err != nil {
		return nil, err
	}

	remaining := q.limit() - int64(len(priced))
	if remaining <= 0 {
		return priced, nil
	}

	uq := store.Query{
		Collection: "listings",
		Filter:     unpricedFilter,
		Sort:       bson.D{{Key: "created_at", Value: -1}},
		Limit:      remaining,
	}

	var unpriced []models.Listing
	err = r.retry.Do(ctx, func(ctx context.Context) error {
		unpriced = nil
		return r.exec.Run(ctx, uq, &unpriced)
	})
	if err != nil {
		return nil, err
	}
	return append(priced, unpriced...), nil
}

// GetByID devuelve un listing público con sus reviews y rating agregado.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &models.ValidationError{Msg: "invalid listing id"}
	}

	ctx, cancel := context.WithTimeout(ctx, store.RelationalTimeout)
	defer cancel()

	sq := store.Query{
		Collection: "listings",
		Filter: bson.M{
			"_id":    oid,
			"status": bson.M{"$in": []string{"active", "approved"}},
		},
	}

	var listing models.Listing
	err = r.retry.Do(ctx, func(ctx context.Context) error {
		return r.exec.RunOne(ctx, sq, &listing)
	})
	if err != nil {
		return nil, err
	}

	rows := []models.Listing{listing}
	if err := r.attachRatings(ctx, rows, true); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// Featured trae los listings destacados, los más nuevos primero.
func (r *ListingRepository) Featured(ctx context.Context, limit int64) ([]models.Listing, error) {
	return r.Query(ctx, ListingQuery{Featured: true, Sort: SortNewest, Limit: limit})
}

// attachRatings trae en una sola lectura las reviews de todos los listings
// y calcula el rating por fila. Si withReviews es false, la colección cruda
// se descarta: la vista pública lleva solo el valor agregado.
func (r *ListingRepository) attachRatings(ctx context.Context, listings []models.Listing, withReviews bool) error {
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID.Hex())
	}

	rq := store.Query{
		Collection: "reviews",
		Filter:     bson.M{"listing_id": bson.M{"$in": ids}},
	}

	var reviews []models.Review
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		reviews = nil
		return r.exec.Run(ctx, rq, &reviews)
	})
	if err != nil {
		return err
	}

	byListing := make(map[string][]models.Review, len(listings))
	for _, rev := range reviews {
		byListing[rev.ListingID] = append(byListing[rev.ListingID], rev)
	}

	for i := range listings {
		rs := byListing[listings[i].ID.Hex()]
		listings[i].AverageRating = AverageRating(rs)
		if withReviews {
			listings[i].Reviews = rs
		} else {
			listings[i].Reviews = nil
		}
	}
	return nil
}
