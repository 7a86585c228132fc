package services

import (
	"context"
	"errors"
	"fmt"

	"food-app/db"
	"food-app/models"
)

var (
	ErrInvalidItem   = errors.New("invalid catalog item")
	ErrUnknownSource = errors.New("unknown catalog source")
)

// Catalog is the read-only, ordered list of food items offered by the app.
type Catalog struct {
	items []models.FoodItem
	byID  map[int]int
}

// NewCatalog validates items and indexes them by id. Order is preserved.
func NewCatalog(items []models.FoodItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]models.FoodItem, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("%w: id %d must be positive", ErrInvalidItem, it.ID)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidItem, it.ID)
		}
		if it.Name == "" {
			return nil, fmt.Errorf("%w: id %d has no name", ErrInvalidItem, it.ID)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: id %d price must be >= 0", ErrInvalidItem, it.ID)
		}
		if !it.Category.Valid() {
			return nil, fmt.Errorf("%w: id %d category %q", ErrInvalidItem, it.ID, it.Category)
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []models.FoodItem {
	out := make([]models.FoodItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}

func (c *Catalog) ByID(id int) (models.FoodItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.FoodItem{}, false
	}
	return c.items[i], true
}

func (c *Catalog) ByCategory(category models.Category) []models.FoodItem {
	var out []models.FoodItem
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Favorites returns the catalog items whose ids are in ids, in catalog order.
// Ids that are not in the catalog are skipped.
func (c *Catalog) Favorites(ids []int) []models.FoodItem {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	var out []models.FoodItem
	for _, it := range c.items {
		if _, ok := set[it.ID]; ok {
			out = append(out, it)
		}
	}
	return out
}

// Recommended returns the sides offered next to item on its detail screen.
func (c *Catalog) Recommended(item models.FoodItem) []models.FoodItem {
	var out []models.FoodItem
	for _, it := range c.items {
		if it.Category == models.CategorySides && it.ID != item.ID {
			out = append(out, it)
		}
	}
	return out
}

// ListFoodItems reads the whole catalog table ordered by id.
func ListFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, price, image, description, rating, reviews, category, calories
		FROM food_items
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.FoodItem
	for rows.Next() {
		var it models.FoodItem
		var cat string
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Image, &it.Description,
			&it.Rating, &it.Reviews, &cat, &it.Calories); err != nil {
			return nil, err
		}
		it.Category = models.Category(cat)
		items = append(items, it)
	}
	return items, rows.Err()
}

// LoadCatalogPostgres builds the catalog from the food_items table.
func LoadCatalogPostgres(ctx context.Context) (*Catalog, error) {
	if db.Pool == nil {
		return nil, errors.New("catalog: database not initialized")
	}
	items, err := ListFoodItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	return NewCatalog(items)
}
