// Package seed loads the catalog used by the database-less server.
package seed

import (
	"fmt"
	"io"
	"os"

	"github.com/wichananm65/food-order-backend/internal/category"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/money"
	"gopkg.in/yaml.v3"
)

// Catalog is the content of a seed file.
type Catalog struct {
	Categories []category.Category
	Foods      []food.Food
}

type fileCategory struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	ImageURL string `yaml:"image_url"`
}

type fileExtra struct {
	ID    int         `yaml:"id"`
	Name  string      `yaml:"name"`
	Value money.Money `yaml:"value"`
}

type fileFood struct {
	ID           int         `yaml:"id"`
	Name         string      `yaml:"name"`
	Description  string      `yaml:"description"`
	Price        money.Money `yaml:"price"`
	Category     int         `yaml:"category"`
	ImageURL     string      `yaml:"image_url"`
	ThumbnailURL string      `yaml:"thumbnail_url"`
	Extras       []fileExtra `yaml:"extras"`
}

type file struct {
	Categories []fileCategory `yaml:"categories"`
	Foods      []fileFood     `yaml:"foods"`
}

// LoadFile reads a seed file from disk.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a seed document. Ids must be positive and unique, and every
// food must reference a declared category.
func Load(r io.Reader) (Catalog, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return Catalog{}, fmt.Errorf("decode seed: %w", err)
	}

	var out Catalog
	categories := make(map[int]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		if c.ID <= 0 || categories[c.ID] {
			return Catalog{}, fmt.Errorf("seed: invalid or duplicate category id %d", c.ID)
		}
		categories[c.ID] = true
		out.Categories = append(out.Categories, category.Category{ID: c.ID, Title: c.Title, ImageURL: c.ImageURL})
	}

	foods := make(map[int]bool, len(doc.Foods))
	for _, f := range doc.Foods {
		if f.ID <= 0 || foods[f.ID] {
			return Catalog{}, fmt.Errorf("seed: invalid or duplicate food id %d", f.ID)
		}
		foods[f.ID] = true
		if !categories[f.Category] {
			return Catalog{}, fmt.Errorf("seed: food %d references unknown category %d", f.ID, f.Category)
		}
		if f.Price.IsNegative() {
			return Catalog{}, fmt.Errorf("seed: food %d has a negative price", f.ID)
		}

		item := food.Food{
			ID:           f.ID,
			Name:         f.Name,
			Description:  f.Description,
			Price:        f.Price,
			CategoryID:   f.Category,
			ImageURL:     f.ImageURL,
			ThumbnailURL: f.ThumbnailURL,
		}
		extras := make(map[int]bool, len(f.Extras))
		for _, e := range f.Extras {
			if e.ID <= 0 || extras[e.ID] {
				return Catalog{}, fmt.Errorf("seed: food %d has invalid or duplicate extra id %d", f.ID, e.ID)
			}
			if e.Value.IsNegative() {
				return Catalog{}, fmt.Errorf("seed: extra %d of food %d has a negative value", e.ID, f.ID)
			}
			extras[e.ID] = true
			item.Extras = append(item.Extras, food.Extra{ID: e.ID, Name: e.Name, Value: e.Value})
		}
		out.Foods = append(out.Foods, item)
	}
	return out, nil
}
