package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserDoc struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	FullName     string             `json:"fullName,omitempty" bson:"full_name,omitempty"`
	Role         string             `json:"role" bson:"role"` // user|operator|admin
	CreatedAt    string             `json:"createdAt" bson:"created_at"`
	UpdatedAt    string             `json:"updatedAt" bson:"updated_at"`
}
