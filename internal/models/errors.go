package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")

	// ErrTimeout: la espera acotada de una lectura se agotó (distinto de un
	// error reportado por el store).
	ErrTimeout = errors.New("models: query deadline exceeded")

	// ErrAuthRequired: llamada al broker de claves sin sesión válida.
	ErrAuthRequired = errors.New("models: authentication required")
)

// ValidationError: el caller pidió una combinación de parámetros imposible
// (p.e. reviews sin listingId ni operatorId). Nunca se reintenta.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "models: " + e.Msg }

// NetworkError: fallo de conectividad hablando con el store o con el nodo
// de relevancia. Es transitorio: RetryPolicy lo reintenta.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("models: network error in %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StoreError: el store remoto rechazó la consulta (filtro malformado,
// colección inexistente, permisos). Nunca se reintenta.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("models: store error in %s (%s): %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsTransient clasifica los fallos que RetryPolicy puede reintentar:
// problemas de red y timeouts. Errores del store, de validación y de
// autenticación se devuelven de inmediato.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) {
		return true
	}
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
