package store

import (
	"context"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
)

const (
	DefaultMaxRetries = 2
	DefaultBaseDelay  = 1 * time.Second
	DefaultMaxDelay   = 10 * time.Second
)

// RetryPolicy envuelve una lectura con reintentos acotados para fallos
// transitorios (red / timeout). Errores del store, de validación o de
// autenticación se devuelven sin reintentar. Sin jitter: 1s, 2s, tope 10s.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		MaxDelay:   DefaultMaxDelay,
	}
}

// Do ejecuta op hasta 1 + MaxRetries veces. Cada intento crea su propio
// contexto de timeout dentro de op (el executor lo hace por llamada), así
// que un timeout de un intento no quema el presupuesto de los siguientes.
// Cancelar ctx aborta el intento en vuelo y todos los futuros de inmediato.
func (p RetryPolicy) Do(ctx context.Context, op func(context.Context) error) error {
	var last error

	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, p.backoff(attempt-1)); err != nil {
				return err
			}
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		last = err

		if !models.IsTransient(err) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	// reintentos agotados: se devuelve el último fallo
	return last
}

// backoff calcula min(BaseDelay * 2^attempt, MaxDelay).
func (p RetryPolicy) backoff(attempt int) time.Duration {
	d := p.BaseDelay << uint(attempt)
	if d > p.MaxDelay || d <= 0 {
		return p.MaxDelay
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
