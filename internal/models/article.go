package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRecommendation va embebida en un artículo. Es una copia
// desnormalizada, no una referencia a un Product.
type ProductRecommendation struct {
	Title       string `json:"title" bson:"title" binding:"required"`
	Description string `json:"description" bson:"description"`
	AmazonLink  string `json:"amazonLink" bson:"amazon_link" binding:"required"`
	Position    int    `json:"position" bson:"position" binding:"min=0"`
}

type Article struct {
	ID             primitive.ObjectID      `json:"id" bson:"_id,omitempty"`
	Title          Translated              `json:"title" bson:"title"`
	Slug           string                  `json:"slug" bson:"slug"`
	Content        Translated              `json:"content" bson:"content"`
	Excerpt        Translated              `json:"excerpt" bson:"excerpt"`
	Category       string                  `json:"category" bson:"category"`
	Products       []ProductRecommendation `json:"products" bson:"products"`
	FeaturedImage  string                  `json:"featuredImage" bson:"featured_image"`
	Tags           []string                `json:"tags" bson:"tags"`
	Author         string                  `json:"author" bson:"author"`
	IsPublished    bool                    `json:"isPublished" bson:"is_published"`
	PublishedDate  *time.Time              `json:"publishedDate,omitempty" bson:"published_date,omitempty"`
	CreatedAt      time.Time               `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time               `json:"updatedAt" bson:"updated_at"`
	SEOTitle       Translated              `json:"seoTitle" bson:"seo_title"`
	SEODescription Translated              `json:"seoDescription" bson:"seo_description"`
}

// SortDate es la fecha de publicación, o la de creación si no la tiene.
func (a *Article) SortDate() time.Time {
	if a.PublishedDate != nil {
		return *a.PublishedDate
	}
	return a.CreatedAt
}

// ArticleCreate es el cuerpo de creación. IsPublished vale true por defecto.
type ArticleCreate struct {
	Title          *Translated             `json:"title" binding:"required"`
	Slug           string                  `json:"slug" binding:"required"`
	Content        *Translated             `json:"content" binding:"required"`
	Excerpt        *Translated             `json:"excerpt" binding:"required"`
	Category       string                  `json:"category" binding:"required"`
	Products       []ProductRecommendation `json:"products" binding:"omitempty,dive"`
	FeaturedImage  string                  `json:"featuredImage"`
	Tags           []string                `json:"tags"`
	Author         string                  `json:"author" binding:"required"`
	IsPublished    *bool                   `json:"isPublished,omitempty"`
	SEOTitle       *Translated             `json:"seoTitle" binding:"required"`
	SEODescription *Translated             `json:"seoDescription" binding:"required"`
}

func (in *ArticleCreate) ToArticle() *Article {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	products := in.Products
	if products == nil {
		products = []ProductRecommendation{}
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Article{
		Title:          in.Title.Value(),
		Slug:           in.Slug,
		Content:        in.Content.Value(),
		Excerpt:        in.Excerpt.Value(),
		Category:       in.Category,
		Products:       products,
		FeaturedImage:  in.FeaturedImage,
		Tags:           tags,
		Author:         in.Author,
		IsPublished:    published,
		SEOTitle:       in.SEOTitle.Value(),
		SEODescription: in.SEODescription.Value(),
	}
}
