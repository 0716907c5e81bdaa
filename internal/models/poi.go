package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categorías cerradas de puntos de interés
const (
	POICategoryHistoricalSite   = "historical_site"
	POICategoryNaturalFeature   = "natural_feature"
	POICategoryCulturalSite     = "cultural_site"
	POICategoryConservationSite = "conservation_site"
	POICategoryViewpoint        = "viewpoint"
	POICategoryBeachArea        = "beach_area"
)

var POICategories = []string{
	POICategoryHistoricalSite,
	POICategoryNaturalFeature,
	POICategoryCulturalSite,
	POICategoryConservationSite,
	POICategoryViewpoint,
	POICategoryBeachArea,
}

// IsValidPOICategory valida contra el set cerrado de categorías.
func IsValidPOICategory(c string) bool {
	for _, v := range POICategories {
		if v == c {
			return true
		}
	}
	return false
}

// Lo que está en Mongo (colección pois).
// Latitude/Longitude siempre presentes; Opening/ClosingTime son "HH:MM:SS"
// nullable (un POI sin horario se considera siempre visitable).
type PointOfInterest struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Category     string             `json:"category" bson:"category"`
	Latitude     float64            `json:"latitude" bson:"latitude"`
	Longitude    float64            `json:"longitude" bson:"longitude"`
	OpeningTime  *string            `json:"openingTime" bson:"opening_time"`
	ClosingTime  *string            `json:"closingTime" bson:"closing_time"`
	ActivityTags []string           `json:"activityTags" bson:"activity_tags"`
	ImageURLs    []string           `json:"imageUrls" bson:"image_urls"`
	Featured     bool               `json:"featured" bson:"featured"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
}
