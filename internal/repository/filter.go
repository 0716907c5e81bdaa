package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// Claves de orden soportadas por las queries públicas
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// CategoryAll es el sentinel "todas las categorías".
const CategoryAll = "all"

const DefaultListingLimit = 12

// ListingQuery es el pedido declarativo de listings. Solo una clave de
// orden activa a la vez; los empates en newest/price-* conservan el orden
// que devolvió el store.
type ListingQuery struct {
	Category string
	Search   string
	Sort     string
	Limit    int64
	// WithReviews adjunta las reviews crudas además del rating agregado.
	WithReviews bool
	// Statuses restringe la visibilidad pública; vacío = active+approved.
	// Las queries públicas siempre llevan esta restricción, no es
	// sobreescribible por categoría ni búsqueda.
	Statuses []string
	Featured bool
}

// POIQuery es el pedido declarativo por la vía de filtros simples. La vía
// de relevancia (hora + tags) es un camino alterno excluyente y no pasa
// por acá.
type POIQuery struct {
	Category string
	Search   string
	Featured bool
	Limit    int64
}

func (q ListingQuery) statuses() []string {
	if len(q.Statuses) > 0 {
		return q.Statuses
	}
	return []string{"active", "approved"}
}

func (q ListingQuery) limit() int64 {
	if q.Limit > 0 {
		return q.Limit
	}
	return DefaultListingLimit
}

// buildListingFilter traduce el pedido a filtro del store. La búsqueda de
// texto matchea substring case-insensitive contra title O description.
func buildListingFilter(q ListingQuery) bson.M {
	filter := bson.M{
		"status": bson.M{"$in": q.statuses()},
	}
	if q.Category != "" && q.Category != CategoryAll {
		filter["category"] = q.Category
	}
	if q.Featured {
		filter["featured"] = true
	}
	if q.Search != "" {
		pattern := regexp.QuoteMeta(q.Search)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

// priceFilters parte el filtro de una query ordenada por precio en dos:
// filas con precio real y filas sin precio. El store ordena null primero
// en ascendente, así que una sola lectura con límite llenaría el cupo con
// filas sin precio antes de las baratas; leyendo primero las que tienen
// precio, el límite se reparte bien y las sin precio solo entran si sobra
// lugar (siempre al final, en cualquier dirección).
func priceFilters(q ListingQuery) (priced, unpriced bson.M) {
	priced = buildListingFilter(q)
	priced["price"] = bson.M{"$ne": nil}
	unpriced = buildListingFilter(q)
	unpriced["price"] = nil
	return priced, unpriced
}

// buildListingSort arma el orden que sí puede resolver el store.
// SortRating devuelve nil: el store no guarda el rating agregado, ese
// orden se aplica client-side después de agregar (ver rating.go).
func buildListingSort(sortKey string) bson.D {
	switch sortKey {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case SortRating:
		return nil
	default: // SortNewest
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

func buildPOIFilter(q POIQuery) bson.M {
	filter := bson.M{}
	if q.Category != "" && q.Category != CategoryAll {
		filter["category"] = q.Category
	}
	if q.Featured {
		filter["featured"] = true
	}
	if q.Search != "" {
		pattern := regexp.QuoteMeta(q.Search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}
