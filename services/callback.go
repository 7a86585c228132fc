package services

import (
	"strconv"
	"strings"

	"food-app/models"
	"food-app/session"
)

// Callback data understood by ParseCallback. Arguments follow the prefix, separated by ':'.
const (
	CbLogin    = "login"
	CbBack     = "back"
	CbCart     = "cart"
	CbCheckout = "checkout"
	CbPay      = "pay"
	CbPayBack  = "pay_back"
	CbLogout   = "logout"
	CbNoop     = "noop"

	CbNav  = "nav:"
	CbCat  = "cat:"
	CbView = "view:"
	CbFav  = "fav:"
	CbPick = "pick:"
	CbAdd  = "add:"
	CbQty  = "qty:"
)

func cbView(id int) string              { return CbView + strconv.Itoa(id) }
func cbFav(id int) string               { return CbFav + strconv.Itoa(id) }
func cbAdd(id, qty int) string          { return CbAdd + strconv.Itoa(id) + ":" + strconv.Itoa(qty) }
func cbQty(id, qty int) string          { return CbQty + strconv.Itoa(id) + ":" + strconv.Itoa(qty) }
func cbNav(k session.ScreenKind) string { return CbNav + k.String() }

// ParseCallback turns button callback data into a session action.
// ok is false for no-op buttons, malformed data and items missing from the catalog.
func ParseCallback(data string, c *Catalog) (session.Action, bool) {
	switch data {
	case CbLogin:
		return session.Login{}, true
	case CbBack:
		return session.GoBack{}, true
	case CbCart:
		return session.GoToCart{}, true
	case CbCheckout:
		return session.ProceedToCheckout{}, true
	case CbPay:
		return session.PaymentSuccess{}, true
	case CbPayBack:
		return session.BackToCart{}, true
	case CbLogout:
		return session.Logout{}, true
	}

	switch {
	case strings.HasPrefix(data, CbNav):
		scr, ok := session.ScreenByName(strings.TrimPrefix(data, CbNav))
		if !ok {
			return nil, false
		}
		return session.NavigateTo{Screen: scr}, true
	case strings.HasPrefix(data, CbCat):
		cat := models.Category(strings.TrimPrefix(data, CbCat))
		if !cat.Valid() {
			return nil, false
		}
		return session.SelectCategory{Category: cat}, true
	case strings.HasPrefix(data, CbView):
		item, ok := lookup(c, strings.TrimPrefix(data, CbView))
		if !ok {
			return nil, false
		}
		return session.ViewDetails{Item: item}, true
	case strings.HasPrefix(data, CbFav):
		id, err := strconv.Atoi(strings.TrimPrefix(data, CbFav))
		if err != nil {
			return nil, false
		}
		return session.ToggleFavorite{ItemID: id}, true
	case strings.HasPrefix(data, CbPick):
		delta, err := strconv.Atoi(strings.TrimPrefix(data, CbPick))
		if err != nil {
			return nil, false
		}
		return session.AdjustPicker{Delta: delta}, true
	case strings.HasPrefix(data, CbAdd):
		idStr, qtyStr, ok := strings.Cut(strings.TrimPrefix(data, CbAdd), ":")
		if !ok {
			return nil, false
		}
		item, found := lookup(c, idStr)
		qty, err := strconv.Atoi(qtyStr)
		if !found || err != nil {
			return nil, false
		}
		return session.AddToCart{Item: item, Quantity: qty}, true
	case strings.HasPrefix(data, CbQty):
		idStr, qtyStr, ok := strings.Cut(strings.TrimPrefix(data, CbQty), ":")
		if !ok {
			return nil, false
		}
		id, err1 := strconv.Atoi(idStr)
		qty, err2 := strconv.Atoi(qtyStr)
		if err1 != nil || err2 != nil {
			return nil, false
		}
		return session.UpdateCartQuantity{ItemID: id, Quantity: qty}, true
	}
	return nil, false
}

func lookup(c *Catalog, idStr string) (models.FoodItem, bool) {
	id, err := strconv.Atoi(idStr)
	if err != nil || c == nil {
		return models.FoodItem{}, false
	}
	return c.ByID(id)
}
