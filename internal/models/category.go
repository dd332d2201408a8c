package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category se identifica por CategoryID (un slug); los productos apuntan a
// la categoría por ese slug, no por el id de Mongo.
type Category struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	CategoryID string             `json:"categoryId" bson:"category_id"`
	Name       Translated         `json:"name" bson:"name"`
	Icon       string             `json:"icon" bson:"icon"`
	IsActive   bool               `json:"isActive" bson:"is_active"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
}

type CategoryCreate struct {
	CategoryID string      `json:"categoryId" binding:"required"`
	Name       *Translated `json:"name" binding:"required"`
	Icon       string      `json:"icon" binding:"required"`
	IsActive   *bool       `json:"isActive,omitempty"`
}

func (in *CategoryCreate) ToCategory() *Category {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &Category{
		CategoryID: in.CategoryID,
		Name:       in.Name.Value(),
		Icon:       in.Icon,
		IsActive:   active,
	}
}
