package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}
}

func TestRetryTransientExhaustsAttempts(t *testing.T) {
	calls := 0
	failure := &models.NetworkError{Op: "find listings", Err: errors.New("conn refused")}

	err := fastPolicy().Do(context.Background(), func(ctx context.Context) error {
		calls++
		return failure
	})

	// 1 intento inicial + 2 reintentos, y se devuelve el último fallo
	if calls != 3 {
		t.Errorf("esperaba 3 intentos, hubo %d", calls)
	}
	var netErr *models.NetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("esperaba el último NetworkError, obtuve %v", err)
	}
}

func TestRetryTimeoutIsTransient(t *testing.T) {
	calls := 0
	err := fastPolicy().Do(context.Background(), func(ctx context.Context) error {
		calls++
		return models.ErrTimeout
	})
	if calls != 3 {
		t.Errorf("esperaba 3 intentos, hubo %d", calls)
	}
	if !errors.Is(err, models.ErrTimeout) {
		t.Errorf("esperaba ErrTimeout, obtuve %v", err)
	}
}

func TestRetryDoesNotRetryStoreErrors(t *testing.T) {
	calls := 0
	failure := &models.StoreError{Op: "find", Collection: "listings", Err: errors.New("unknown field")}

	err := fastPolicy().Do(context.Background(), func(ctx context.Context) error {
		calls++
		return failure
	})

	if calls != 1 {
		t.Errorf("un StoreError no se reintenta, hubo %d intentos", calls)
	}
	var storeErr *models.StoreError
	if !errors.As(err, &storeErr) {
		t.Errorf("esperaba StoreError, obtuve %v", err)
	}
}

func TestRetryDoesNotRetryValidation(t *testing.T) {
	calls := 0
	err := fastPolicy().Do(context.Background(), func(ctx context.Context) error {
		calls++
		return &models.ValidationError{Msg: "bad params"}
	})
	if calls != 1 {
		t.Errorf("un ValidationError no se reintenta, hubo %d intentos", calls)
	}
	var valErr *models.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("esperaba ValidationError, obtuve %v", err)
	}
}

func TestRetrySucceedsMidway(t *testing.T) {
	calls := 0
	err := fastPolicy().Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return models.ErrTimeout
		}
		return nil
	})
	if err != nil {
		t.Fatalf("esperaba éxito en el segundo intento: %v", err)
	}
	if calls != 2 {
		t.Errorf("esperaba 2 intentos, hubo %d", calls)
	}
}

func TestRetryCancelAbortsPendingAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	policy := RetryPolicy{MaxRetries: 2, BaseDelay: time.Hour, MaxDelay: time.Hour}
	calls := 0

	done := make(chan error, 1)
	go func() {
		done <- policy.Do(ctx, func(ctx context.Context) error {
			calls++
			return models.ErrTimeout
		})
	}()

	// el primer intento falla y el loop queda esperando el backoff de 1h;
	// la cancelación tiene que cortarlo de inmediato
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("esperaba context.Canceled, obtuve %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("la cancelación no abortó el backoff pendiente")
	}

	if calls != 1 {
		t.Errorf("no debía haber más intentos después de cancelar, hubo %d", calls)
	}
}

func TestBackoffDelays(t *testing.T) {
	p := DefaultRetryPolicy()

	// min(1s * 2^n, 10s): 1s, 2s, y el tope en 10s
	if d := p.backoff(0); d != time.Second {
		t.Errorf("backoff(0): esperaba 1s, obtuve %v", d)
	}
	if d := p.backoff(1); d != 2*time.Second {
		t.Errorf("backoff(1): esperaba 2s, obtuve %v", d)
	}
	if d := p.backoff(2); d != 4*time.Second {
		t.Errorf("backoff(2): esperaba 4s, obtuve %v", d)
	}
	if d := p.backoff(10); d != 10*time.Second {
		t.Errorf("backoff(10): esperaba el tope de 10s, obtuve %v", d)
	}
}
