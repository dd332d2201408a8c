package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"affiliate-catalog/internal/models"
)

// ProductFilter describe un listado de productos. Search busca, solo en
// Language y sin distinguir mayúsculas, una subcadena del nombre, la
// descripción o alguna característica.
type ProductFilter struct {
	Category string
	Search   string
	Language models.Language
	Skip     int64
	Limit    int64
}

func (f ProductFilter) BSON() bson.M {
	filter := bson.M{"is_active": true}

	if f.Category != "" {
		filter["category"] = f.Category
	}

	if f.Search != "" {
		lang := languageKey(f.Language)
		re := substring(f.Search)
		filter["$or"] = bson.A{
			bson.M{"name." + lang: re},
			bson.M{"description." + lang: re},
			bson.M{"features." + lang: re},
		}
	}

	return filter
}

// ArticleFilter describe un listado de artículos publicados.
type ArticleFilter struct {
	Category string
	Skip     int64
	Limit    int64
}

func (f ArticleFilter) BSON() bson.M {
	filter := bson.M{"is_published": true}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	return filter
}

// ArticleSearch encuentra artículos publicados cuyo título, contenido o
// extracto en Language, o alguna etiqueta, contiene Query.
type ArticleSearch struct {
	Query    string
	Language models.Language
	Limit    int64
}

func (s ArticleSearch) BSON() bson.M {
	lang := languageKey(s.Language)
	re := substring(s.Query)
	return bson.M{
		"is_published": true,
		"$or": bson.A{
			bson.M{"title." + lang: re},
			bson.M{"content." + lang: re},
			bson.M{"excerpt." + lang: re},
			bson.M{"tags": re},
		},
	}
}

func relatedFilter(category string, excludeID primitive.ObjectID) bson.M {
	return bson.M{
		"is_published": true,
		"category":     category,
		"_id":          bson.M{"$ne": excludeID},
	}
}

// substring construye una regex sin distinción de mayúsculas que busca term literal.
func substring(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func languageKey(lang models.Language) string {
	if lang == "" {
		return string(models.DefaultLanguage)
	}
	return string(lang)
}
