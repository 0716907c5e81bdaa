package repository

import (
	"math"
	"sort"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
)

// AverageRating reduce las reviews de un listing/operator a un solo rating:
// media aritmética redondeada half-up a 1 decimal, 0 sin reviews. Se
// recalcula en cada fetch, nunca se cachea aparte de sus reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Floor(avg*10+0.5) / 10
}

// sortListingsByRating ordena descendente por rating agregado. Tiene que
// ser estable: los empates conservan el orden que devolvió el store.
func sortListingsByRating(listings []models.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].AverageRating > listings[j].AverageRating
	})
}
