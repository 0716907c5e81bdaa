package service

import (
	"context"
	"log"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/realtime"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
)

// Interfaces mínimas para poder probar el feed sin store real.
type listingQuerier interface {
	Query(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error)
}

type changeSource interface {
	Subscribe(ctx context.Context, collection string) (realtime.Subscription, error)
}

// ListingSnapshot es el estado publicado de una query viva: el último
// result set o el error que lo reemplazó.
type ListingSnapshot struct {
	Listings   []models.Listing `json:"listings"`
	Err        error            `json:"-"`
	Error      string           `json:"error,omitempty"`
	Generation uint64           `json:"generation"`
}

// ListingFeed mantiene una query de listings coherente con el change feed
// del store. Un solo loop es dueño del estado; cada fetch sale etiquetado
// con una generación monótona y al completar solo se aplica si su
// generación sigue siendo la última: una completion vieja que llega tarde
// jamás pisa datos más frescos.
type ListingFeed struct {
	listings listingQuerier
	source   changeSource

	paramCh chan repository.ListingQuery
	updates chan ListingSnapshot

	// espera entre reintentos cuando abrir el change feed falla
	resubDelay time.Duration
}

func NewListingFeed(listings listingQuerier, source changeSource) *ListingFeed {
	return &ListingFeed{
		listings:   listings,
		source:     source,
		paramCh:    make(chan repository.ListingQuery),
		updates:    make(chan ListingSnapshot, 1),
		resubDelay: 5 * time.Second,
	}
}

// Updates entrega snapshots; las ráfagas se coalescen al más reciente.
func (f *ListingFeed) Updates() <-chan ListingSnapshot { return f.updates }

// SetParams re-establece los parámetros de la query viva. El loop cancela
// el fetch en vuelo de los parámetros viejos y libera la suscripción
// anterior antes de abrir la nueva.
func (f *ListingFeed) SetParams(ctx context.Context, q repository.ListingQuery) error {
	select {
	case f.paramCh <- q:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run ejecuta el loop hasta que ctx se cancele. Dispara el fetch inicial,
// refetchea el result set completo ante cualquier aviso del change feed
// (sin parches por fila) y publica cada snapshot aplicado.
func (f *ListingFeed) Run(ctx context.Context, params repository.ListingQuery) {
	defer close(f.updates)

	type fetchResult struct {
		gen      uint64
		listings []models.Listing
		err      error
	}

	var (
		gen         uint64
		sub         realtime.Subscription
		changes     <-chan struct{}
		resubCh     <-chan time.Time
		cancelFetch context.CancelFunc = func() {}
	)
	resultCh := make(chan fetchResult, 1)

	subscribe := func() {
		// liberar del todo la suscripción vieja antes de adquirir la nueva
		if sub != nil {
			sub.Close()
			sub = nil
			changes = nil
		}
		s, err := f.source.Subscribe(ctx, "listings")
		if err != nil {
			// sin suscripción no llegan invalidaciones: se reintenta más
			// tarde en vez de quedar sordo para siempre
			if ctx.Err() == nil {
				log.Printf("[live] no se pudo suscribir al change feed: %v", err)
				resubCh = time.After(f.resubDelay)
			}
			return
		}
		sub = s
		changes = s.Changes()
		resubCh = nil
	}

	refetch := func() {
		gen++
		g := gen
		cancelFetch()
		fctx, cancel := context.WithCancel(ctx)
		cancelFetch = cancel
		go func() {
			listings, err := f.listings.Query(fctx, params)
			select {
			case resultCh <- fetchResult{gen: g, listings: listings, err: err}:
			case <-fctx.Done():
			}
		}()
	}

	subscribe()
	refetch()

	for {
		select {
		case <-ctx.Done():
			cancelFetch()
			if sub != nil {
				sub.Close()
			}
			return

		case q := <-f.paramCh:
			params = q
			subscribe()
			refetch()

		case <-changes:
			refetch()

		case <-resubCh:
			resubCh = nil
			subscribe()

		case res := <-resultCh:
			if res.gen != gen {
				// completion de un fetch superado, se descarta
				continue
			}
			snap := ListingSnapshot{Listings: res.listings, Err: res.err, Generation: res.gen}
			if res.err != nil {
				snap.Error = res.err.Error()
			}
			f.publish(snap)
		}
	}
}

// publish empuja sin bloquear: si el consumidor va atrasado se descarta el
// snapshot viejo y queda el nuevo.
func (f *ListingFeed) publish(snap ListingSnapshot) {
	for {
		select {
		case f.updates <- snap:
			return
		default:
		}
		select {
		case <-f.updates:
		default:
		}
	}
}
