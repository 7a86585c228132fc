package session

import "food-app/models"

// Action is one user-triggered event. Name is a stable identifier used for logs and metrics.
type Action interface {
	Name() string
}

// Notice is a user-visible signal produced by a transition.
type Notice string

const (
	NoticeNone           Notice = ""
	NoticePaymentSuccess Notice = "payment_success"
)

type (
	Login      struct{}
	GoBack     struct{}
	GoToCart   struct{}
	Logout     struct{}
	BackToCart struct{}

	ProceedToCheckout struct{}
	PaymentSuccess    struct{}

	NavigateTo struct {
		Screen Screen
	}
	ViewDetails struct {
		Item models.FoodItem
	}
	ToggleFavorite struct {
		ItemID int
	}
	AddToCart struct {
		Item     models.FoodItem
		Quantity int
	}
	UpdateCartQuantity struct {
		ItemID   int
		Quantity int
	}
	SelectCategory struct {
		Category models.Category
	}
	AdjustPicker struct {
		Delta int
	}
)

func (Login) Name() string              { return "login" }
func (GoBack) Name() string             { return "go_back" }
func (GoToCart) Name() string           { return "go_to_cart" }
func (Logout) Name() string             { return "logout" }
func (BackToCart) Name() string         { return "back_to_cart" }
func (ProceedToCheckout) Name() string  { return "proceed_to_checkout" }
func (PaymentSuccess) Name() string     { return "payment_success" }
func (NavigateTo) Name() string         { return "navigate_to" }
func (ViewDetails) Name() string        { return "view_details" }
func (ToggleFavorite) Name() string     { return "toggle_favorite" }
func (AddToCart) Name() string          { return "add_to_cart" }
func (UpdateCartQuantity) Name() string { return "update_cart_quantity" }
func (SelectCategory) Name() string     { return "select_category" }
func (AdjustPicker) Name() string       { return "adjust_picker" }

// Reduce applies a to s and returns the next state. s is left untouched.
// Every action is valid in every state; actions that refer to missing items are no-ops.
func Reduce(s State, a Action) (State, Notice) {
	switch a := a.(type) {
	case Login:
		s.screen = DefaultMenu()
	case NavigateTo:
		if a.Screen != nil {
			s.screen = a.Screen
		}
	case ViewDetails:
		s.screen = DetailScreen{Item: a.Item, Quantity: 1}
	case GoBack:
		s.screen = DefaultMenu()
	case GoToCart:
		s.screen = CartScreen{}
	case ProceedToCheckout:
		s.screen = PaymentScreen{}
	case BackToCart:
		s.screen = CartScreen{}
	case PaymentSuccess:
		s.cart = nil
		s.screen = DefaultMenu()
		return s, NoticePaymentSuccess
	case Logout:
		return Initial(), NoticeNone
	case ToggleFavorite:
		s.favorites = toggle(s.favorites, a.ItemID)
	case AddToCart:
		if a.Quantity > 0 {
			s.cart = addLine(s.cart, a.Item, a.Quantity)
		}
	case UpdateCartQuantity:
		s.cart = setLine(s.cart, a.ItemID, a.Quantity)
	case SelectCategory:
		if _, ok := s.screen.(MenuScreen); ok && a.Category.Valid() {
			s.screen = MenuScreen{Category: a.Category}
		}
	case AdjustPicker:
		if d, ok := s.screen.(DetailScreen); ok {
			delta := clampQuantity(a.Delta, -MaxLineQuantity)
			d.Quantity = clampQuantity(d.Quantity+delta, 1)
			s.screen = d
		}
	}
	return s, NoticeNone
}

func toggle(ids []int, id int) []int {
	i := indexOf(ids, id)
	if i < 0 {
		out := make([]int, len(ids), len(ids)+1)
		copy(out, ids)
		return append(out, id)
	}
	out := make([]int, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	out = append(out, ids[i+1:]...)
	if len(out) == 0 {
		return nil
	}
	return out
}

// clampQuantity bounds q to [lo, MaxLineQuantity].
func clampQuantity(q, lo int) int {
	if q < lo {
		return lo
	}
	if q > MaxLineQuantity {
		return MaxLineQuantity
	}
	return q
}

func addLine(cart []models.CartItem, item models.FoodItem, qty int) []models.CartItem {
	qty = clampQuantity(qty, 1)
	out := make([]models.CartItem, len(cart), len(cart)+1)
	copy(out, cart)
	for i := range out {
		if out[i].ID == item.ID {
			out[i].Quantity = clampQuantity(out[i].Quantity+qty, 1)
			return out
		}
	}
	return append(out, models.CartItem{FoodItem: item, Quantity: qty})
}

func setLine(cart []models.CartItem, itemID, qty int) []models.CartItem {
	if len(cart) == 0 {
		return nil
	}
	if qty <= 0 {
		out := make([]models.CartItem, 0, len(cart))
		for _, ci := range cart {
			if ci.ID != itemID {
				out = append(out, ci)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	for i := range out {
		if out[i].ID == itemID {
			out[i].Quantity = clampQuantity(qty, 1)
		}
	}
	return out
}
