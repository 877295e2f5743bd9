package stub

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

type Seed struct {
	// bearer token -> shopper
	Tokens     map[string]string `yaml:"tokens"`
	Categories []SeedCategory    `yaml:"categories"`
	Products   []SeedProduct     `yaml:"products"`
}

type SeedCategory struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type SeedProduct struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	ImageURL    string `yaml:"image_url"`
	CategoryID  *int64 `yaml:"category_id"`
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*Seed, error) {
	seed := &Seed{}
	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return seed, nil
}

func (s *Seed) toModel() ([]model.Category, []model.Product, error) {
	categories := make([]model.Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, model.Category{ID: c.ID, Name: c.Name, Description: c.Description})
	}

	products := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, nil, fmt.Errorf("product %d price %q: %w", p.ID, p.Price, err)
		}
		if price.IsNegative() {
			return nil, nil, fmt.Errorf("product %d has negative price", p.ID)
		}
		products = append(products, model.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       price,
			ImageURL:    p.ImageURL,
			CategoryID:  p.CategoryID,
		})
	}
	return categories, products, nil
}

func ptr(v int64) *int64 { return &v }

// DefaultSeed 本地開發用的資料
func DefaultSeed() *Seed {
	return &Seed{
		Tokens: map[string]string{"dev-token": "dev-shopper"},
		Categories: []SeedCategory{
			{ID: 1, Name: "Men", Description: "Tailoring and outerwear for men."},
			{ID: 2, Name: "Women", Description: "Dresses, knitwear and coats."},
			{ID: 3, Name: "Gifts"},
			{ID: 4, Name: "Home"},
		},
		Products: []SeedProduct{
			{ID: 101, Name: "Wool Coat", Price: "420.00", ImageURL: "/img/coat-1.jpg,/img/coat-2.jpg", CategoryID: ptr(1)},
			{ID: 102, Name: "Oxford Shirt", Price: "95.00", ImageURL: "/img/shirt-1.jpg", CategoryID: ptr(1)},
			{ID: 103, Name: "Chinos", Price: "120.00", CategoryID: ptr(1)},
			{ID: 104, Name: "Loafers", Price: "260.00", ImageURL: "/img/loafer-1.jpg, /img/loafer-2.jpg", CategoryID: ptr(1)},
			{ID: 105, Name: "Cashmere Scarf", Price: "150.00", CategoryID: ptr(1)},
			{ID: 201, Name: "Silk Dress", Price: "380.00", CategoryID: ptr(2)},
			{ID: 202, Name: "Knit Cardigan", Price: "210.00", CategoryID: ptr(2)},
			{ID: 301, Name: "Candle", Price: "10.00", CategoryID: ptr(3)},
			{ID: 302, Name: "Gift Card", Price: "25.50", CategoryID: ptr(3)},
		},
	}
}
