package session

import "food-app/models"

// FlatDeliveryFee is charged on every non-empty cart.
const FlatDeliveryFee int64 = 500

// MaxLineQuantity caps a single cart line and the detail quantity picker.
const MaxLineQuantity = 999

// State is the whole session: active screen, cart lines and favorite ids.
// Values are never mutated in place; Reduce always builds a new State.
type State struct {
	screen    Screen
	cart      []models.CartItem
	favorites []int
}

// Initial returns the state a session starts in and returns to on logout.
func Initial() State {
	return State{screen: AuthScreen{}}
}

func (s State) Screen() Screen {
	if s.screen == nil {
		return AuthScreen{}
	}
	return s.screen
}

// SelectedItem returns the item shown on the detail screen, if that is the active view.
func (s State) SelectedItem() (models.FoodItem, bool) {
	if d, ok := s.screen.(DetailScreen); ok {
		return d.Item, true
	}
	return models.FoodItem{}, false
}

// Cart returns a copy of the cart lines in insertion order.
func (s State) Cart() []models.CartItem {
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Favorites returns a copy of the favorite ids in the order they were marked.
func (s State) Favorites() []int {
	out := make([]int, len(s.favorites))
	copy(out, s.favorites)
	return out
}

func (s State) IsFavorite(itemID int) bool {
	return indexOf(s.favorites, itemID) >= 0
}

// LineQuantity returns the cart quantity for itemID, 0 when absent.
func (s State) LineQuantity(itemID int) int {
	for _, ci := range s.cart {
		if ci.ID == itemID {
			return ci.Quantity
		}
	}
	return 0
}

// ItemCount is the sum of quantities across all cart lines.
func (s State) ItemCount() int {
	n := 0
	for _, ci := range s.cart {
		n += ci.Quantity
	}
	return n
}

// Subtotal is the sum of price × quantity across all cart lines.
func (s State) Subtotal() int64 {
	var sum int64
	for _, ci := range s.cart {
		sum += ci.LineTotal()
	}
	return sum
}

func (s State) DeliveryFee() int64 {
	if s.Subtotal() > 0 {
		return FlatDeliveryFee
	}
	return 0
}

func (s State) Total() int64 {
	sub := s.Subtotal()
	if sub > 0 {
		return sub + FlatDeliveryFee
	}
	return sub
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
