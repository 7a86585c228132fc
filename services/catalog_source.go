package services

import (
	"context"
	"fmt"
	"os"

	"food-app/models"

	"gopkg.in/yaml.v3"
)

const (
	SourceBuiltin  = "builtin"
	SourcePostgres = "postgres"
	SourceYAML     = "yaml"
)

type catalogFile struct {
	Items []models.FoodItem `yaml:"items"`
}

// ParseCatalogYAML decodes a catalog document of the form `items: [...]`.
func ParseCatalogYAML(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}
	return NewCatalog(f.Items)
}

func LoadCatalogYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseCatalogYAML(data)
}

// LoadCatalog picks the catalog source by name. An empty name means builtin.
func LoadCatalog(ctx context.Context, source, path string) (*Catalog, error) {
	switch source {
	case "", SourceBuiltin:
		return BuiltinCatalog()
	case SourceYAML:
		return LoadCatalogYAML(path)
	case SourcePostgres:
		return LoadCatalogPostgres(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}

// BuiltinCatalog returns the catalog compiled into the binary.
func BuiltinCatalog() (*Catalog, error) {
	return NewCatalog(builtinItems)
}

var builtinItems = []models.FoodItem{
	{ID: 1, Name: "Jollof Rice & Chicken", Price: 3500, Image: "images/jollof.jpg", Description: "Smoky party jollof served with grilled chicken and fried plantain.", Rating: 4.8, Reviews: 214, Category: models.CategoryMeals, Calories: 720},
	{ID: 2, Name: "Classic Beef Burger", Price: 4200, Image: "images/burger.jpg", Description: "Flame-grilled beef patty, cheddar, lettuce and house sauce.", Rating: 4.6, Reviews: 187, Category: models.CategoryMeals, Calories: 810},
	{ID: 3, Name: "Pepper Soup", Price: 3000, Image: "images/peppersoup.jpg", Description: "Spicy goat meat pepper soup with fresh herbs.", Rating: 4.5, Reviews: 96, Category: models.CategoryMeals, Calories: 430},
	{ID: 4, Name: "Fried Plantain", Price: 800, Image: "images/dodo.jpg", Description: "Sweet ripe plantain, golden fried.", Rating: 4.7, Reviews: 152, Category: models.CategorySides, Calories: 260},
	{ID: 5, Name: "Coleslaw", Price: 500, Image: "images/coleslaw.jpg", Description: "Crunchy cabbage and carrot in a light dressing.", Rating: 4.2, Reviews: 61, Category: models.CategorySides, Calories: 150},
	{ID: 6, Name: "French Fries", Price: 1000, Image: "images/fries.jpg", Description: "Crispy salted fries.", Rating: 4.4, Reviews: 133, Category: models.CategorySides, Calories: 365},
	{ID: 7, Name: "Meat Pie", Price: 700, Image: "images/meatpie.jpg", Description: "Flaky pastry filled with minced beef and potato.", Rating: 4.6, Reviews: 88, Category: models.CategorySnacks, Calories: 390},
	{ID: 8, Name: "Puff-Puff", Price: 400, Image: "images/puffpuff.jpg", Description: "Six pieces of soft fried dough dusted with sugar.", Rating: 4.9, Reviews: 240, Category: models.CategorySnacks, Calories: 310},
	{ID: 9, Name: "Chapman", Price: 1200, Image: "images/chapman.jpg", Description: "Fruity sparkling cocktail with cucumber and citrus.", Rating: 4.5, Reviews: 77, Category: models.CategoryDrinks, Calories: 180},
	{ID: 10, Name: "Zobo", Price: 600, Image: "images/zobo.jpg", Description: "Chilled hibiscus drink with ginger and pineapple.", Rating: 4.3, Reviews: 54, Category: models.CategoryDrinks, Calories: 90},
}
