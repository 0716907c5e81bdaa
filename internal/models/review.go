package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lo que está en Mongo (colección reviews).
// Cada review referencia un listing O un operator (al menos uno).
type Review struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ListingID  string             `json:"listingId,omitempty" bson:"listing_id,omitempty"`
	OperatorID string             `json:"operatorId,omitempty" bson:"operator_id,omitempty"`
	UserID     string             `json:"userId" bson:"user_id"`
	Rating     int                `json:"rating" bson:"rating"` // 1..5
	Comment    string             `json:"comment,omitempty" bson:"comment,omitempty"`
	UsedGuide  *bool              `json:"usedGuide,omitempty" bson:"used_guide,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
}
