package api

import (
	"errors"
	"fmt"
	"net/http"

	"food-app/models"
	"food-app/services"
	"food-app/session"
)

var (
	ErrUnknownAction = errors.New("unknown action type")
	ErrUnknownScreen = errors.New("unknown screen")
	ErrItemNotFound  = errors.New("item not found")
)

// ActionRequest is the body of POST /sessions/:id/actions. Only the fields the
// action type needs are read. Quantity is bounded by session.MaxLineQuantity.
type ActionRequest struct {
	Type     string `json:"type" binding:"required"`
	ItemID   int    `json:"item_id"`
	Quantity int    `json:"quantity" binding:"max=999"`
	Screen   string `json:"screen"`
	Category string `json:"category"`
	Delta    int    `json:"delta"`
}

// Action resolves the request into a session action. Item ids are looked up in the
// catalog only where the action carries the whole item.
func (r ActionRequest) Action(c *services.Catalog) (session.Action, error) {
	switch r.Type {
	case "login":
		return session.Login{}, nil
	case "navigate_to":
		scr, ok := session.ScreenByName(r.Screen)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, r.Screen)
		}
		return session.NavigateTo{Screen: scr}, nil
	case "view_details":
		item, ok := c.ByID(r.ItemID)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrItemNotFound, r.ItemID)
		}
		return session.ViewDetails{Item: item}, nil
	case "go_back":
		return session.GoBack{}, nil
	case "go_to_cart":
		return session.GoToCart{}, nil
	case "proceed_to_checkout":
		return session.ProceedToCheckout{}, nil
	case "back_to_cart":
		return session.BackToCart{}, nil
	case "payment_success":
		return session.PaymentSuccess{}, nil
	case "logout":
		return session.Logout{}, nil
	case "toggle_favorite":
		return session.ToggleFavorite{ItemID: r.ItemID}, nil
	case "add_to_cart":
		item, ok := c.ByID(r.ItemID)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrItemNotFound, r.ItemID)
		}
		return session.AddToCart{Item: item, Quantity: r.Quantity}, nil
	case "update_cart_quantity":
		return session.UpdateCartQuantity{ItemID: r.ItemID, Quantity: r.Quantity}, nil
	case "select_category":
		return session.SelectCategory{Category: models.Category(r.Category)}, nil
	case "adjust_picker":
		return session.AdjustPicker{Delta: r.Delta}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, r.Type)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
