package session

import (
	"math"
	"testing"

	"food-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = models.FoodItem{ID: 1, Name: "Burger", Price: 1000, Category: models.CategoryMeals}
	fries  = models.FoodItem{ID: 2, Name: "Fries", Price: 500, Category: models.CategorySides}
	cola   = models.FoodItem{ID: 3, Name: "Cola", Price: 300, Category: models.CategoryDrinks}
)

func apply(s State, actions ...Action) State {
	for _, a := range actions {
		s, _ = Reduce(s, a)
	}
	return s
}

func TestInitialState(t *testing.T) {
	s := Initial()
	assert.Equal(t, KindAuth, s.Screen().Kind())
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Favorites())
	_, ok := s.SelectedItem()
	assert.False(t, ok)
	assert.Zero(t, s.Total())
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Screen
	}{
		{"login", []Action{Login{}}, DefaultMenu()},
		{"navigate to profile", []Action{NavigateTo{Screen: ProfileScreen{}}}, ProfileScreen{}},
		{"navigate from auth needs no login", []Action{NavigateTo{Screen: PaymentScreen{}}}, PaymentScreen{}},
		{"view details", []Action{Login{}, ViewDetails{Item: burger}}, DetailScreen{Item: burger, Quantity: 1}},
		{"go back clears selection", []Action{ViewDetails{Item: burger}, GoBack{}}, DefaultMenu()},
		{"go to cart", []Action{GoToCart{}}, CartScreen{}},
		{"checkout", []Action{GoToCart{}, ProceedToCheckout{}}, PaymentScreen{}},
		{"payment back", []Action{ProceedToCheckout{}, BackToCart{}}, CartScreen{}},
		{"nil navigate is ignored", []Action{Login{}, NavigateTo{}}, DefaultMenu()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := apply(Initial(), tt.actions...)
			assert.Equal(t, tt.want, s.Screen())
		})
	}
}

func TestSelectedItemOnlyOnDetail(t *testing.T) {
	s := apply(Initial(), ViewDetails{Item: fries})
	item, ok := s.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, fries, item)

	s = apply(s, GoToCart{})
	_, ok = s.SelectedItem()
	assert.False(t, ok)
}

func TestToggleFavoriteIsInvolution(t *testing.T) {
	start := apply(Initial(), ToggleFavorite{ItemID: 7})
	for _, id := range []int{1, 7, 42, -3} {
		s := apply(start, ToggleFavorite{ItemID: id}, ToggleFavorite{ItemID: id})
		assert.Equal(t, start.Favorites(), s.Favorites(), "id %d", id)
	}

	s := apply(Initial(), ToggleFavorite{ItemID: 1}, ToggleFavorite{ItemID: 2})
	assert.Equal(t, []int{1, 2}, s.Favorites())
	assert.True(t, s.IsFavorite(2))
	s = apply(s, ToggleFavorite{ItemID: 1})
	assert.Equal(t, []int{2}, s.Favorites())
	assert.False(t, s.IsFavorite(1))
}

func TestAddToCartMergesLines(t *testing.T) {
	for _, q := range [][2]int{{1, 1}, {2, 3}, {10, 1}, {1000, 999}} {
		s := apply(Initial(), AddToCart{Item: burger, Quantity: q[0]}, AddToCart{Item: burger, Quantity: q[1]})
		cart := s.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, q[0]+q[1], cart[0].Quantity)
	}
}

func TestAddToCartKeepsOrder(t *testing.T) {
	s := apply(Initial(),
		AddToCart{Item: fries, Quantity: 1},
		AddToCart{Item: burger, Quantity: 1},
		AddToCart{Item: fries, Quantity: 2},
		AddToCart{Item: cola, Quantity: 1},
	)
	var ids []int
	for _, ci := range s.Cart() {
		ids = append(ids, ci.ID)
	}
	assert.Equal(t, []int{2, 1, 3}, ids)
	assert.Equal(t, 3, s.LineQuantity(fries.ID))
}

func TestAddToCartIgnoresNonPositiveQuantity(t *testing.T) {
	s := apply(Initial(), AddToCart{Item: burger, Quantity: 0}, AddToCart{Item: cola, Quantity: -2})
	assert.Empty(t, s.Cart())
}

func TestUpdateCartQuantity(t *testing.T) {
	base := apply(Initial(), AddToCart{Item: burger, Quantity: 2}, AddToCart{Item: fries, Quantity: 1})

	s := apply(base, UpdateCartQuantity{ItemID: burger.ID, Quantity: 5})
	assert.Equal(t, 5, s.LineQuantity(burger.ID))

	s = apply(base, UpdateCartQuantity{ItemID: burger.ID, Quantity: 0})
	assert.Zero(t, s.LineQuantity(burger.ID))
	require.Len(t, s.Cart(), 1)

	again := apply(s, UpdateCartQuantity{ItemID: burger.ID, Quantity: 0})
	assert.Equal(t, s, again)

	s = apply(base, UpdateCartQuantity{ItemID: fries.ID, Quantity: -1})
	assert.Zero(t, s.LineQuantity(fries.ID))

	s = apply(base, UpdateCartQuantity{ItemID: 999, Quantity: 4})
	assert.Equal(t, base.Cart(), s.Cart())
}

func TestItemCountInvariant(t *testing.T) {
	actions := []Action{
		AddToCart{Item: burger, Quantity: 2},
		AddToCart{Item: fries, Quantity: 3},
		UpdateCartQuantity{ItemID: burger.ID, Quantity: 1},
		AddToCart{Item: cola, Quantity: 4},
		UpdateCartQuantity{ItemID: fries.ID, Quantity: 0},
		AddToCart{Item: burger, Quantity: 6},
		UpdateCartQuantity{ItemID: 404, Quantity: 0},
	}
	s := Initial()
	for _, a := range actions {
		s, _ = Reduce(s, a)
		sum := 0
		for _, ci := range s.Cart() {
			assert.Positive(t, ci.Quantity)
			sum += ci.Quantity
		}
		assert.Equal(t, sum, s.ItemCount(), "after %s", a.Name())
	}
}

func TestTotals(t *testing.T) {
	empty := Initial()
	assert.Zero(t, empty.Subtotal())
	assert.Zero(t, empty.DeliveryFee())
	assert.Zero(t, empty.Total())

	s := apply(Initial(), AddToCart{Item: burger, Quantity: 2}, AddToCart{Item: fries, Quantity: 1})
	assert.Equal(t, int64(2500), s.Subtotal())
	assert.Equal(t, int64(500), s.DeliveryFee())
	assert.Equal(t, int64(3000), s.Total())
	assert.Equal(t, 3, s.ItemCount())
}

func TestPaymentSuccess(t *testing.T) {
	s := apply(Initial(), Login{}, AddToCart{Item: burger, Quantity: 1}, ToggleFavorite{ItemID: 1}, ProceedToCheckout{})
	s, notice := Reduce(s, PaymentSuccess{})
	assert.Equal(t, NoticePaymentSuccess, notice)
	assert.Empty(t, s.Cart())
	assert.Equal(t, DefaultMenu(), s.Screen())
	assert.Equal(t, []int{1}, s.Favorites())
}

func TestLogoutResetsToInitial(t *testing.T) {
	s := apply(Initial(),
		Login{},
		ToggleFavorite{ItemID: burger.ID},
		ToggleFavorite{ItemID: cola.ID},
		AddToCart{Item: burger, Quantity: 3},
		ViewDetails{Item: fries},
		Logout{},
	)
	assert.Equal(t, Initial(), s)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	base := apply(Initial(), AddToCart{Item: burger, Quantity: 1}, ToggleFavorite{ItemID: 1})
	snapshot := base.Cart()
	favs := base.Favorites()

	apply(base,
		AddToCart{Item: burger, Quantity: 4},
		UpdateCartQuantity{ItemID: burger.ID, Quantity: 9},
		ToggleFavorite{ItemID: 1},
		ToggleFavorite{ItemID: 2},
	)
	assert.Equal(t, snapshot, base.Cart())
	assert.Equal(t, favs, base.Favorites())
}

func TestMenuCategoryAndPicker(t *testing.T) {
	s := apply(Initial(), Login{}, SelectCategory{Category: models.CategoryDrinks})
	assert.Equal(t, MenuScreen{Category: models.CategoryDrinks}, s.Screen())

	s = apply(s, SelectCategory{Category: "Desserts"})
	assert.Equal(t, MenuScreen{Category: models.CategoryDrinks}, s.Screen())

	// category tabs only exist on the menu
	cart := apply(Initial(), GoToCart{}, SelectCategory{Category: models.CategorySides})
	assert.Equal(t, CartScreen{}, cart.Screen())

	s = apply(s, ViewDetails{Item: cola}, AdjustPicker{Delta: 1}, AdjustPicker{Delta: 1})
	assert.Equal(t, DetailScreen{Item: cola, Quantity: 3}, s.Screen())
	s = apply(s, AdjustPicker{Delta: -5})
	assert.Equal(t, DetailScreen{Item: cola, Quantity: 1}, s.Screen())
}

func TestCartLineQuantityIsCapped(t *testing.T) {
	s := apply(Initial(), AddToCart{Item: burger, Quantity: math.MaxInt}, AddToCart{Item: burger, Quantity: 1})
	require.Len(t, s.Cart(), 1)
	assert.Equal(t, MaxLineQuantity, s.LineQuantity(burger.ID))
	assert.Equal(t, MaxLineQuantity, s.ItemCount())
	assert.Equal(t, burger.Price*MaxLineQuantity, s.Subtotal())
	assert.Equal(t, burger.Price*MaxLineQuantity+FlatDeliveryFee, s.Total())

	s = apply(s, UpdateCartQuantity{ItemID: burger.ID, Quantity: math.MaxInt})
	assert.Equal(t, MaxLineQuantity, s.LineQuantity(burger.ID))

	d := apply(Initial(), ViewDetails{Item: cola}, AdjustPicker{Delta: math.MaxInt}, AdjustPicker{Delta: math.MaxInt})
	assert.Equal(t, DetailScreen{Item: cola, Quantity: MaxLineQuantity}, d.Screen())
	d = apply(d, AdjustPicker{Delta: math.MinInt})
	assert.Equal(t, DetailScreen{Item: cola, Quantity: 1}, d.Screen())
}
