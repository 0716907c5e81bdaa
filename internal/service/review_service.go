package service

import (
	"context"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
)

type ReviewService struct {
	reviews *repository.ReviewRepository
}

func NewReviewService(reviews *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// For devuelve las reviews de un listing u operator junto con su rating
// agregado (calculado acá, el store no lo conoce).
func (s *ReviewService) For(ctx context.Context, listingID, operatorID string) ([]models.Review, float64, error) {
	reviews, err := s.reviews.For(ctx, listingID, operatorID)
	if err != nil {
		return nil, 0, err
	}
	return reviews, repository.AverageRating(reviews), nil
}
