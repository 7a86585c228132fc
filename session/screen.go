package session

import (
	"strings"

	"food-app/models"
)

// ScreenKind identifies the active view without its payload.
type ScreenKind int

const (
	KindAuth ScreenKind = iota
	KindMenu
	KindDetail
	KindCart
	KindPayment
	KindProfile
	KindFavorites
)

var kindNames = map[ScreenKind]string{
	KindAuth:      "auth",
	KindMenu:      "menu",
	KindDetail:    "detail",
	KindCart:      "cart",
	KindPayment:   "payment",
	KindProfile:   "profile",
	KindFavorites: "favorites",
}

func (k ScreenKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Screen is the active view. Each variant carries exactly the data its view needs,
// so a detail screen always has an item.
type Screen interface {
	Kind() ScreenKind
	isScreen()
}

type AuthScreen struct{}

// MenuScreen shows the catalog filtered by one category tab.
type MenuScreen struct {
	Category models.Category
}

// DetailScreen shows one item and the quantity picker for adding it to the cart.
type DetailScreen struct {
	Item     models.FoodItem
	Quantity int
}

type CartScreen struct{}

type PaymentScreen struct{}

type ProfileScreen struct{}

type FavoritesScreen struct{}

func (AuthScreen) Kind() ScreenKind      { return KindAuth }
func (MenuScreen) Kind() ScreenKind      { return KindMenu }
func (DetailScreen) Kind() ScreenKind    { return KindDetail }
func (CartScreen) Kind() ScreenKind      { return KindCart }
func (PaymentScreen) Kind() ScreenKind   { return KindPayment }
func (ProfileScreen) Kind() ScreenKind   { return KindProfile }
func (FavoritesScreen) Kind() ScreenKind { return KindFavorites }

func (AuthScreen) isScreen()      {}
func (MenuScreen) isScreen()      {}
func (DetailScreen) isScreen()    {}
func (CartScreen) isScreen()      {}
func (PaymentScreen) isScreen()   {}
func (ProfileScreen) isScreen()   {}
func (FavoritesScreen) isScreen() {}

// DefaultMenu is the menu screen with the first category tab active.
func DefaultMenu() MenuScreen {
	return MenuScreen{Category: models.CategoryMeals}
}

// ScreenByName resolves a payload-free screen by name. "home" is an alias for the menu.
// The detail screen needs an item and is never returned here; use ViewDetails instead.
func ScreenByName(name string) (Screen, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auth":
		return AuthScreen{}, true
	case "menu", "home":
		return DefaultMenu(), true
	case "cart":
		return CartScreen{}, true
	case "payment":
		return PaymentScreen{}, true
	case "profile":
		return ProfileScreen{}, true
	case "favorites":
		return FavoritesScreen{}, true
	}
	return nil, false
}
