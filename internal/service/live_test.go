package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/realtime"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
)

type fakeQuerier struct {
	fn func(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error)
}

func (f *fakeQuerier) Query(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error) {
	return f.fn(ctx, q)
}

type fakeSub struct {
	ch  chan struct{}
	src *fakeSource
}

func (s *fakeSub) Changes() <-chan struct{} { return s.ch }

func (s *fakeSub) Close() {
	s.src.mu.Lock()
	defer s.src.mu.Unlock()
	s.src.events = append(s.src.events, "close")
}

type fakeSource struct {
	mu       sync.Mutex
	events   []string
	subs     []*fakeSub
	failures int
}

func (f *fakeSource) Subscribe(ctx context.Context, collection string) (realtime.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		f.events = append(f.events, "subscribe-error")
		return nil, errors.New("change feed no disponible")
	}
	f.events = append(f.events, "subscribe")
	s := &fakeSub{ch: make(chan struct{}, 1), src: f}
	f.subs = append(f.subs, s)
	return s, nil
}

func waitSnap(t *testing.T, feed *ListingFeed) ListingSnapshot {
	t.Helper()
	select {
	case snap, ok := <-feed.Updates():
		if !ok {
			t.Fatal("el canal de updates se cerró antes de tiempo")
		}
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("no llegó ningún snapshot")
	}
	return ListingSnapshot{}
}

func TestFeedPublishesInitialSnapshot(t *testing.T) {
	q := &fakeQuerier{fn: func(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error) {
		return []models.Listing{{Title: "inicial"}}, nil
	}}
	src := &fakeSource{}

	feed := NewListingFeed(q, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx, repository.ListingQuery{})

	snap := waitSnap(t, feed)
	if len(snap.Listings) != 1 || snap.Listings[0].Title != "inicial" {
		t.Errorf("snapshot inicial equivocado: %+v", snap.Listings)
	}
	if snap.Generation != 1 {
		t.Errorf("esperaba generación 1, obtuve %d", snap.Generation)
	}
}

func TestFeedRefetchesOnInvalidation(t *testing.T) {
	var calls int32
	q := &fakeQuerier{fn: func(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return []models.Listing{{Title: "v1"}}, nil
		}
		return []models.Listing{{Title: "v2"}}, nil
	}}
	src := &fakeSource{}

	feed := NewListingFeed(q, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx, repository.ListingQuery{})

	first := waitSnap(t, feed)
	if first.Listings[0].Title != "v1" {
		t.Fatalf("primer snapshot equivocado: %+v", first.Listings)
	}

	// cualquier mutación de la tabla dispara un refetch completo
	src.mu.Lock()
	sub := src.subs[0]
	src.mu.Unlock()
	sub.ch <- struct{}{}

	second := waitSnap(t, feed)
	if second.Listings[0].Title != "v2" {
		t.Errorf("después de invalidar esperaba v2: %+v", second.Listings)
	}
	if second.Generation <= first.Generation {
		t.Errorf("la generación debe crecer: %d -> %d", first.Generation, second.Generation)
	}
}

func TestFeedDiscardsStaleCompletion(t *testing.T) {
	release := make(chan struct{})
	var calls int32

	q := &fakeQuerier{fn: func(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// fetch viejo: se queda en vuelo y completa tarde, ignorando
			// la cancelación a propósito
			<-release
			return []models.Listing{{Title: "viejo"}}, nil
		}
		return []models.Listing{{Title: "nuevo"}}, nil
	}}
	src := &fakeSource{}

	feed := NewListingFeed(q, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx, repository.ListingQuery{})

	// cambio de parámetros mientras el primer fetch sigue en vuelo
	if err := feed.SetParams(ctx, repository.ListingQuery{Category: "tour"}); err != nil {
		t.Fatal(err)
	}

	snap := waitSnap(t, feed)
	if snap.Listings[0].Title != "nuevo" {
		t.Fatalf("esperaba el resultado nuevo: %+v", snap.Listings)
	}

	// ahora completa el fetch superado: su resultado no puede pisar nada
	close(release)
	select {
	case late, ok := <-feed.Updates():
		if ok {
			t.Errorf("una completion vieja publicó snapshot: %+v", late.Listings)
		}
	case <-time.After(150 * time.Millisecond):
		// nada publicado, la generación vieja se descartó
	}
}

func TestFeedRetriesSubscribeAfterFailure(t *testing.T) {
	var calls int32
	q := &fakeQuerier{fn: func(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return []models.Listing{{Title: "v1"}}, nil
		}
		return []models.Listing{{Title: "v2"}}, nil
	}}
	src := &fakeSource{failures: 1}

	feed := NewListingFeed(q, src)
	feed.resubDelay = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx, repository.ListingQuery{})

	// el fetch inicial sale igual, aun sin suscripción
	first := waitSnap(t, feed)
	if first.Listings[0].Title != "v1" {
		t.Fatalf("primer snapshot equivocado: %+v", first.Listings)
	}

	// el feed no queda sordo: reintenta y termina suscripto
	deadline := time.Now().Add(2 * time.Second)
	for {
		src.mu.Lock()
		n := len(src.subs)
		src.mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("nunca se reintentó la suscripción al change feed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// y la suscripción recuperada invalida de verdad
	src.mu.Lock()
	sub := src.subs[0]
	src.mu.Unlock()
	sub.ch <- struct{}{}

	second := waitSnap(t, feed)
	if second.Listings[0].Title != "v2" {
		t.Errorf("tras recuperar la suscripción esperaba v2: %+v", second.Listings)
	}
}

func TestFeedReleasesSubscriptionBeforeResubscribing(t *testing.T) {
	q := &fakeQuerier{fn: func(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error) {
		return []models.Listing{}, nil
	}}
	src := &fakeSource{}

	feed := NewListingFeed(q, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx, repository.ListingQuery{})

	waitSnap(t, feed)

	if err := feed.SetParams(ctx, repository.ListingQuery{Category: "activity"}); err != nil {
		t.Fatal(err)
	}
	waitSnap(t, feed)

	src.mu.Lock()
	events := append([]string(nil), src.events...)
	src.mu.Unlock()

	// la suscripción vieja se libera ANTES de adquirir la nueva
	want := []string{"subscribe", "close", "subscribe"}
	if len(events) < 3 {
		t.Fatalf("eventos insuficientes: %v", events)
	}
	for i, w := range want {
		if events[i] != w {
			t.Fatalf("orden de suscripción equivocado: %v", events)
		}
	}
}
