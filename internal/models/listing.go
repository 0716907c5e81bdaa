package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados posibles de un listing
const (
	ListingStatusDraft    = "draft"
	ListingStatusPending  = "pending"
	ListingStatusActive   = "active"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
)

// Lo que está en Mongo (colección listings)
type Listing struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OperatorID  string             `json:"operatorId,omitempty" bson:"operator_id,omitempty"`
	Category    string             `json:"category" bson:"category"`
	Status      string             `json:"status" bson:"status"` // draft|pending|active|approved|rejected
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       *float64           `json:"price" bson:"price"` // nullable: "precio a consultar"
	PriceUnit   string             `json:"priceUnit,omitempty" bson:"price_unit,omitempty"`
	Images      []string           `json:"images" bson:"images"`
	Featured    bool               `json:"featured" bson:"featured"`
	IsVerified  bool               `json:"isVerified" bson:"is_verified"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`

	// Campos calculados en el fetch, no persistidos.
	// AverageRating siempre va en la respuesta; Reviews solo cuando el
	// caller las pidió explícitamente (son dos representaciones distintas).
	AverageRating float64  `json:"averageRating" bson:"-"`
	Reviews       []Review `json:"reviews,omitempty" bson:"-"`
}

// Operator es el negocio dueño de cero o más listings (solo lectura aquí).
type Operator struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessName string             `json:"businessName" bson:"business_name"`
	Status       string             `json:"status" bson:"status"`
	IsVerified   bool               `json:"isVerified" bson:"is_verified"`
	ContactEmail string             `json:"contactEmail,omitempty" bson:"contact_email,omitempty"`
	ContactPhone string             `json:"contactPhone,omitempty" bson:"contact_phone,omitempty"`
	Categories   []string           `json:"categories,omitempty" bson:"categories,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`

	AverageRating float64  `json:"averageRating" bson:"-"`
	Reviews       []Review `json:"reviews,omitempty" bson:"-"`
}
