package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto afiliado en el catálogo
type Product struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          Translated         `json:"name" bson:"name"`
	Description   Translated         `json:"description" bson:"description"`
	Category      string             `json:"category" bson:"category"`
	Price         float64            `json:"price" bson:"price"`
	OriginalPrice float64            `json:"originalPrice" bson:"original_price"`
	Image         string             `json:"image" bson:"image"`
	AmazonLink    string             `json:"amazonLink" bson:"amazon_link"`
	Rating        float64            `json:"rating" bson:"rating"`
	Reviews       int                `json:"reviews" bson:"reviews"`
	Features      Features           `json:"features" bson:"features"`
	IsActive      bool               `json:"isActive" bson:"is_active"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}

// ProductCreate es el cuerpo de creación. IsActive vale true por defecto.
type ProductCreate struct {
	Name          *Translated `json:"name" binding:"required"`
	Description   *Translated `json:"description" binding:"required"`
	Category      string      `json:"category" binding:"required"`
	Price         float64     `json:"price" binding:"min=0"`
	OriginalPrice float64     `json:"originalPrice" binding:"min=0"`
	Image         string      `json:"image" binding:"required"`
	AmazonLink    string      `json:"amazonLink" binding:"required"`
	Rating        float64     `json:"rating" binding:"min=0,max=5"`
	Reviews       int         `json:"reviews" binding:"min=0"`
	Features      Features    `json:"features" binding:"required"`
	IsActive      *bool       `json:"isActive,omitempty"`
}

func (in *ProductCreate) ToProduct() *Product {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &Product{
		Name:          in.Name.Value(),
		Description:   in.Description.Value(),
		Category:      in.Category,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         in.Image,
		AmazonLink:    in.AmazonLink,
		Rating:        in.Rating,
		Reviews:       in.Reviews,
		Features:      in.Features,
		IsActive:      active,
	}
}

// ProductUpdate representa los campos actualizables de un producto
type ProductUpdate struct {
	Name          *Translated `json:"name,omitempty"`
	Description   *Translated `json:"description,omitempty"`
	Category      *string     `json:"category,omitempty"`
	Price         *float64    `json:"price,omitempty" binding:"omitempty,min=0"`
	OriginalPrice *float64    `json:"originalPrice,omitempty" binding:"omitempty,min=0"`
	Image         *string     `json:"image,omitempty"`
	AmazonLink    *string     `json:"amazonLink,omitempty"`
	Rating        *float64    `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Reviews       *int        `json:"reviews,omitempty" binding:"omitempty,min=0"`
	Features      Features    `json:"features,omitempty"`
	IsActive      *bool       `json:"isActive,omitempty"`
}

// Fields devuelve los nombres de campo guardados y los valores recibidos.
// No incluye updated_at; lo pone siempre el repositorio.
func (u *ProductUpdate) Fields() bson.M {
	fields := bson.M{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.OriginalPrice != nil {
		fields["original_price"] = *u.OriginalPrice
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.AmazonLink != nil {
		fields["amazon_link"] = *u.AmazonLink
	}
	if u.Rating != nil {
		fields["rating"] = *u.Rating
	}
	if u.Reviews != nil {
		fields["reviews"] = *u.Reviews
	}
	if u.Features != nil {
		fields["features"] = u.Features
	}
	if u.IsActive != nil {
		fields["is_active"] = *u.IsActive
	}
	return fields
}
