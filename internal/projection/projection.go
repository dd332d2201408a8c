// Package projection convierte las entidades guardadas en vistas de
// respuesta en un solo idioma. Ninguna función modifica el origen: los
// slices se copian. Los campos bilingües fallan con ErrUnsupportedLanguage
// ante un código desconocido; las características caen a una lista vacía.
package projection

import (
	"time"

	"affiliate-catalog/internal/models"
)

type ProductView struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Image         string    `json:"image"`
	AmazonLink    string    `json:"amazonLink"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Features      []string  `json:"features"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CategoryView es más estrecha que Category: el slug hace de id y no se
// exponen isActive ni createdAt.
type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ArticleView struct {
	ID             string                         `json:"id"`
	Title          string                         `json:"title"`
	Slug           string                         `json:"slug"`
	Content        string                         `json:"content"`
	Excerpt        string                         `json:"excerpt"`
	Category       string                         `json:"category"`
	Products       []models.ProductRecommendation `json:"products"`
	FeaturedImage  string                         `json:"featuredImage"`
	Tags           []string                       `json:"tags"`
	Author         string                         `json:"author"`
	IsPublished    bool                           `json:"isPublished"`
	PublishedDate  *time.Time                     `json:"publishedDate"`
	CreatedAt      time.Time                      `json:"createdAt"`
	UpdatedAt      time.Time                      `json:"updatedAt"`
	SEOTitle       string                         `json:"seoTitle"`
	SEODescription string                         `json:"seoDescription"`
}

type ArticleSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Category      string     `json:"category"`
	FeaturedImage string     `json:"featuredImage"`
	Tags          []string   `json:"tags"`
	Author        string     `json:"author"`
	PublishedDate *time.Time `json:"publishedDate"`
}

func Product(p *models.Product, lang models.Language) (ProductView, error) {
	name, err := p.Name.In(lang)
	if err != nil {
		return ProductView{}, err
	}
	description, err := p.Description.In(lang)
	if err != nil {
		return ProductView{}, err
	}

	return ProductView{
		ID:            p.ID.Hex(),
		Name:          name,
		Description:   description,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		AmazonLink:    p.AmazonLink,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Features:      p.Features.In(lang),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func Products(products []*models.Product, lang models.Language) ([]ProductView, error) {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		v, err := Product(p, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func Category(c *models.Category, lang models.Language) (CategoryView, error) {
	name, err := c.Name.In(lang)
	if err != nil {
		return CategoryView{}, err
	}
	return CategoryView{ID: c.CategoryID, Name: name, Icon: c.Icon}, nil
}

func Categories(categories []*models.Category, lang models.Language) ([]CategoryView, error) {
	out := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		v, err := Category(c, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Article construye la vista de detalle. Las recomendaciones embebidas no
// tienen campos bilingües y se copian tal cual.
func Article(a *models.Article, lang models.Language) (ArticleView, error) {
	var texts [5]string
	for i, t := range []models.Translated{a.Title, a.Content, a.Excerpt, a.SEOTitle, a.SEODescription} {
		s, err := t.In(lang)
		if err != nil {
			return ArticleView{}, err
		}
		texts[i] = s
	}

	products := make([]models.ProductRecommendation, len(a.Products))
	copy(products, a.Products)

	return ArticleView{
		ID:             a.ID.Hex(),
		Title:          texts[0],
		Slug:           a.Slug,
		Content:        texts[1],
		Excerpt:        texts[2],
		Category:       a.Category,
		Products:       products,
		FeaturedImage:  a.FeaturedImage,
		Tags:           copyStrings(a.Tags),
		Author:         a.Author,
		IsPublished:    a.IsPublished,
		PublishedDate:  copyTime(a.PublishedDate),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		SEOTitle:       texts[3],
		SEODescription: texts[4],
	}, nil
}

func ArticleSummaryOf(a *models.Article, lang models.Language) (ArticleSummary, error) {
	title, err := a.Title.In(lang)
	if err != nil {
		return ArticleSummary{}, err
	}
	excerpt, err := a.Excerpt.In(lang)
	if err != nil {
		return ArticleSummary{}, err
	}

	return ArticleSummary{
		ID:            a.ID.Hex(),
		Title:         title,
		Slug:          a.Slug,
		Excerpt:       excerpt,
		Category:      a.Category,
		FeaturedImage: a.FeaturedImage,
		Tags:          copyStrings(a.Tags),
		Author:        a.Author,
		PublishedDate: copyTime(a.PublishedDate),
	}, nil
}

func ArticleSummaries(articles []*models.Article, lang models.Language) ([]ArticleSummary, error) {
	out := make([]ArticleSummary, 0, len(articles))
	for _, a := range articles {
		v, err := ArticleSummaryOf(a, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
