package models

// FoodItem is one catalog entry. Price is in minor currency units.
type FoodItem struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       int64    `json:"price" yaml:"price"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Reviews     int      `json:"reviews" yaml:"reviews"`
	Category    Category `json:"category" yaml:"category"`
	Calories    int      `json:"calories" yaml:"calories"`
}

type Category string

const (
	CategoryMeals  Category = "Meals"
	CategorySides  Category = "Sides"
	CategorySnacks Category = "Snacks"
	CategoryDrinks Category = "Drinks"
)

// Categories lists the menu tabs in display order.
var Categories = []Category{CategoryMeals, CategorySides, CategorySnacks, CategoryDrinks}

func (c Category) Valid() bool {
	switch c {
	case CategoryMeals, CategorySides, CategorySnacks, CategoryDrinks:
		return true
	}
	return false
}

// CartItem is a catalog item plus a quantity. Quantity stays positive while the line exists.
type CartItem struct {
	FoodItem
	Quantity int `json:"quantity"`
}

// LineTotal returns price × quantity.
func (ci CartItem) LineTotal() int64 {
	return ci.Price * int64(ci.Quantity)
}
