package realtime

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Subscription es el handle de una suscripción al change feed de una
// colección. Changes() entrega avisos genéricos de "algo cambió" (sin diff
// por fila); Close() libera la suscripción de forma determinista y debe
// completarse antes de abrir la siguiente.
type Subscription interface {
	Changes() <-chan struct{}
	Close()
}

// Invalidator abre change streams por colección. La política es
// deliberadamente "invalidar y refetchear el result set completo": no se
// intenta parchear filas localmente, cualquier insert/update/delete dispara
// un aviso.
type Invalidator struct {
	db *mongo.Database
}

func NewInvalidator(db *mongo.Database) *Invalidator {
	return &Invalidator{db: db}
}

// Subscribe registra interés en mutaciones de la colección. Las ráfagas de
// eventos se coalescen: el canal tiene capacidad 1 y los avisos de más se
// descartan, un refetch pendiente ya cubre todos.
func (i *Invalidator) Subscribe(ctx context.Context, collection string) (Subscription, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: bson.D{
				{Key: "$in", Value: bson.A{"insert", "update", "replace", "delete"}},
			}},
		}}},
	}

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := i.db.Collection(collection).Watch(streamCtx, pipeline)
	if err != nil {
		cancel()
		return nil, err
	}

	sub := &streamSub{
		ch:     make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		defer stream.Close(context.Background())

		for stream.Next(streamCtx) {
			sub.notify()
		}
		if err := stream.Err(); err != nil && streamCtx.Err() == nil {
			log.Printf("[realtime] change stream de %s terminó: %v", collection, err)
		}
	}()

	return sub, nil
}

type streamSub struct {
	ch     chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *streamSub) Changes() <-chan struct{} { return s.ch }

// notify empuja un aviso sin bloquear; si ya hay uno pendiente se coalesce.
func (s *streamSub) notify() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Close cancela el stream y espera a que la goroutine termine, así la
// suscripción vieja queda liberada del todo antes de crear una nueva.
func (s *streamSub) Close() {
	s.cancel()
	<-s.done
}
