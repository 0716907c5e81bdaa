package service

import (
	"context"
	"log"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
)

type ListingService struct {
	listings *repository.ListingRepository
	// production desactiva las filas sintéticas de fallback
	production bool
}

func NewListingService(listings *repository.ListingRepository, production bool) *ListingService {
	return &ListingService{listings: listings, production: production}
}

// Query devuelve listings públicos. Fuera de producción, un fallo de la
// query se sustituye por filas sintéticas para no bloquear el desarrollo;
// en producción el error se devuelve siempre tal cual.
func (s *ListingService) Query(ctx context.Context, q repository.ListingQuery) ([]models.Listing, error) {
	listings, err := s.listings.Query(ctx, q)
	if err != nil {
		if !s.production {
			log.Printf("[listings] query falló (%v), usando filas de desarrollo", err)
			return fallbackListings(q), nil
		}
		return nil, err
	}
	return listings, nil
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	return s.listings.GetByID(ctx, id)
}

func (s *ListingService) Featured(ctx context.Context, limit int64) ([]models.Listing, error) {
	return s.listings.Featured(ctx, limit)
}
