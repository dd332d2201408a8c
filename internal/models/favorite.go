package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite une un id de usuario opaco con un producto. Como mucho uno por
// (UserID, ProductID), garantizado por un índice único.
type Favorite struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"`
	ProductID primitive.ObjectID `json:"productId" bson:"product_id"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

type FavoriteCreate struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}
