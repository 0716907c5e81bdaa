package repository

import (
	"testing"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func review(rating int) models.Review {
	return models.Review{
		ID:        primitive.NewObjectID(),
		Rating:    rating,
		CreatedAt: time.Now(),
	}
}

func TestAverageRatingEmpty(t *testing.T) {
	if got := AverageRating(nil); got != 0 {
		t.Errorf("sin reviews, esperaba 0, obtuve %v", got)
	}
	if got := AverageRating([]models.Review{}); got != 0 {
		t.Errorf("sin reviews, esperaba 0, obtuve %v", got)
	}
}

func TestAverageRatingRounding(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"una sola", []int{4}, 4.0},
		{"media exacta", []int{4, 5}, 4.5},
		{"redondeo hacia abajo", []int{3, 3, 4}, 3.3},
		{"redondeo hacia arriba", []int{3, 4, 5}, 4.0},
		{"mitad exacta redondea arriba", []int{4, 4, 5, 4}, 4.3}, // 4.25 -> 4.3
		{"todas cinco", []int{5, 5, 5}, 5.0},
		{"todas uno", []int{1, 1}, 1.0},
	}

	for _, tc := range cases {
		var reviews []models.Review
		for _, r := range tc.ratings {
			reviews = append(reviews, review(r))
		}
		got := AverageRating(reviews)
		if got != tc.want {
			t.Errorf("%s: esperaba %v, obtuve %v", tc.name, tc.want, got)
		}
		if got < 1.0 || got > 5.0 {
			t.Errorf("%s: promedio %v fuera de [1.0, 5.0]", tc.name, got)
		}
	}
}

func TestAttachOperatorRating(t *testing.T) {
	reviews := []models.Review{review(5), review(4)}

	var op models.Operator
	attachOperatorRating(&op, reviews, true)
	if op.AverageRating != 4.5 {
		t.Errorf("esperaba rating 4.5, obtuve %v", op.AverageRating)
	}
	if len(op.Reviews) != 2 {
		t.Errorf("con withReviews las reviews crudas deben adjuntarse, obtuve %d", len(op.Reviews))
	}

	// sin withReviews la vista pública lleva solo el agregado
	var pub models.Operator
	attachOperatorRating(&pub, reviews, false)
	if pub.AverageRating != 4.5 {
		t.Errorf("esperaba rating 4.5, obtuve %v", pub.AverageRating)
	}
	if pub.Reviews != nil {
		t.Errorf("sin withReviews no deben viajar las reviews crudas")
	}

	var empty models.Operator
	attachOperatorRating(&empty, nil, true)
	if empty.AverageRating != 0 {
		t.Errorf("sin reviews el rating agregado es 0, obtuve %v", empty.AverageRating)
	}
}

func TestSortListingsByRatingStable(t *testing.T) {
	// ratings agregados [4.8, 4.2, 0, 4.2]: la fila 4.8 primero, las dos
	// 4.2 en su orden original, la 0 al final
	a := models.Listing{Title: "a", AverageRating: 4.8}
	b := models.Listing{Title: "b", AverageRating: 4.2}
	c := models.Listing{Title: "c", AverageRating: 0}
	d := models.Listing{Title: "d", AverageRating: 4.2}

	listings := []models.Listing{a, b, c, d}
	sortListingsByRating(listings)

	wantOrder := []string{"a", "b", "d", "c"}
	for i, want := range wantOrder {
		if listings[i].Title != want {
			t.Fatalf("posición %d: esperaba %q, obtuve %q", i, want, listings[i].Title)
		}
	}

	for i := 1; i < len(listings); i++ {
		if listings[i-1].AverageRating < listings[i].AverageRating {
			t.Errorf("orden no descendente en posición %d", i)
		}
	}
}
