package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"affiliate-catalog/internal/models"
)

//go:embed data/catalog.json
var defaultCatalog []byte

// catalog es el formato del fichero de carga. Cada entrada tiene la misma
// forma JSON que el cuerpo de los endpoints de creación.
type catalog struct {
	Categories []models.CategoryCreate `json:"categories"`
	Products   []models.ProductCreate  `json:"products"`
	Articles   []models.ArticleCreate  `json:"articles"`
}

// loadCatalog lee path, o el catálogo embebido si path está vacío.
func loadCatalog(path string) (*catalog, error) {
	var r io.Reader = bytes.NewReader(defaultCatalog)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var c catalog
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}

// validate aplica las mismas reglas de binding que la capa HTTP y comprueba
// que cada producto y artículo apunte a una categoría conocida.
func (c *catalog) validate() error {
	v := validator.New()
	v.SetTagName("binding")

	known := map[string]bool{}
	for i := range c.Categories {
		if err := v.Struct(&c.Categories[i]); err != nil {
			return fmt.Errorf("category %d: %w", i, err)
		}
		known[c.Categories[i].CategoryID] = true
	}
	for i := range c.Products {
		p := &c.Products[i]
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
		if !known[p.Category] {
			return fmt.Errorf("product %d: unknown category %q", i, p.Category)
		}
	}
	for i := range c.Articles {
		a := &c.Articles[i]
		if err := v.Struct(a); err != nil {
			return fmt.Errorf("article %q: %w", a.Slug, err)
		}
		if !known[a.Category] {
			return fmt.Errorf("article %q: unknown category %q", a.Slug, a.Category)
		}
	}
	return nil
}
