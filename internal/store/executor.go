package store

import (
	"context"
	"errors"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Executor ejecuta exactamente una lectura acotada en el tiempo contra el
// store remoto. No muta estado del caller: devuelve filas o un fallo ya
// clasificado (timeout / red / store). La cancelación externa viene por el
// contexto y aborta la operación en vuelo.
type Executor struct {
	db *mongo.Database
}

func NewExecutor(db *mongo.Database) *Executor {
	return &Executor{db: db}
}

// Run ejecuta la query y decodifica las filas en dest (puntero a slice).
func (e *Executor) Run(ctx context.Context, q Query, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, q.timeout())
	defer cancel()

	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := e.db.Collection(q.Collection).Find(ctx, q.Filter, opts)
	if err != nil {
		return mapError(ctx, "find", q.Collection, err)
	}
	if err := cur.All(ctx, dest); err != nil {
		return mapError(ctx, "decode", q.Collection, err)
	}
	return nil
}

// RunOne lee una sola fila. Devuelve models.ErrNoRecord cuando no hay match.
func (e *Executor) RunOne(ctx context.Context, q Query, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, q.timeout())
	defer cancel()

	err := e.db.Collection(q.Collection).FindOne(ctx, q.Filter).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNoRecord
	}
	if err != nil {
		return mapError(ctx, "findOne", q.Collection, err)
	}
	return nil
}

// mapError traduce los fallos del driver a la taxonomía propia:
//   - deadline agotado → ErrTimeout (nunca cuelga más allá del límite)
//   - cancelación del caller → se propaga tal cual (no se reintenta)
//   - error de comando del store → StoreError (no transitorio)
//   - resto (DNS, conexión caída, topología) → NetworkError (transitorio)
func mapError(ctx context.Context, op, collection string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return context.Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return models.ErrTimeout
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return &models.StoreError{Op: op, Collection: collection, Err: err}
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return &models.StoreError{Op: op, Collection: collection, Err: err}
	}

	return &models.NetworkError{Op: op + " " + collection, Err: err}
}
