package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	// DefaultTimeout acota una lectura simple.
	DefaultTimeout = 10 * time.Second
	// RelationalTimeout acota lecturas compuestas (fila + relación anidada).
	RelationalTimeout = 20 * time.Second
)

// Query es el descriptor declarativo de una lectura: colección, filtro,
// orden, límite y espera máxima. El executor lo traduce a una sola
// operación contra el store.
type Query struct {
	Collection string
	Filter     bson.M
	Sort       bson.D
	Limit      int64
	// Timeout en cero usa DefaultTimeout.
	Timeout time.Duration
}

func (q Query) timeout() time.Duration {
	if q.Timeout > 0 {
		return q.Timeout
	}
	return DefaultTimeout
}
