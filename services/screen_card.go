package services

import (
	"fmt"
	"strconv"
	"strings"

	"food-app/lang"
	"food-app/models"
	"food-app/session"
)

// CardButton is one inline button.
type CardButton struct {
	Text         string
	CallbackData string
}

// Card is the text and inline keyboard that render one screen.
type Card struct {
	Text    string
	Buttons [][]CardButton
}

func btn(text, data string) CardButton {
	return CardButton{Text: text, CallbackData: data}
}

// BuildCard renders the active screen of st for the given language.
func BuildCard(l string, st session.State, c *Catalog) Card {
	var card Card
	switch scr := st.Screen().(type) {
	case session.AuthScreen:
		card = authCard(l)
	case session.MenuScreen:
		card = menuCard(l, st, scr, c)
	case session.DetailScreen:
		card = detailCard(l, st, scr, c)
	case session.CartScreen:
		card = cartCard(l, st)
	case session.PaymentScreen:
		card = paymentCard(l, st)
	case session.ProfileScreen:
		card = profileCard(l)
	case session.FavoritesScreen:
		card = favoritesCard(l, st, c)
	default:
		card = authCard(l)
	}
	if showsBottomNav(st.Screen().Kind()) {
		card.Buttons = append(card.Buttons, bottomNav(l, st))
	}
	return card
}

// The bottom navigation is hidden on sign-in and while paying.
func showsBottomNav(k session.ScreenKind) bool {
	return k != session.KindAuth && k != session.KindPayment
}

func bottomNav(l string, st session.State) []CardButton {
	return []CardButton{
		btn(lang.T(l, "nav_profile"), cbNav(session.KindProfile)),
		btn(lang.T(l, "nav_menu"), cbNav(session.KindMenu)),
		btn(lang.T(l, "nav_favorites", len(st.Favorites())), cbNav(session.KindFavorites)),
		btn(lang.T(l, "nav_cart", st.ItemCount()), CbCart),
	}
}

func authCard(l string) Card {
	return Card{
		Text:    lang.T(l, "auth_title") + "\n\n" + lang.T(l, "auth_body"),
		Buttons: [][]CardButton{{btn(lang.T(l, "btn_login"), CbLogin)}},
	}
}

func favMark(st session.State, id int) string {
	if st.IsFavorite(id) {
		return "♥"
	}
	return "♡"
}

func itemLabel(l string, it models.FoodItem) string {
	return fmt.Sprintf("%s — %s", it.Name, lang.Money(l, it.Price))
}

func menuCard(l string, st session.State, scr session.MenuScreen, c *Catalog) Card {
	var b strings.Builder
	b.WriteString(lang.T(l, "menu_title"))
	if n := st.ItemCount(); n > 0 {
		b.WriteString("\n" + lang.T(l, "menu_cart_badge", n))
	}
	b.WriteString("\n\n" + lang.T(l, "cat_"+string(scr.Category)))

	var tabs []CardButton
	for _, cat := range models.Categories {
		label := lang.T(l, "cat_"+string(cat))
		if cat == scr.Category {
			label = "• " + label
		}
		tabs = append(tabs, btn(label, CbCat+string(cat)))
	}
	rows := [][]CardButton{tabs}

	items := c.ByCategory(scr.Category)
	if len(items) == 0 {
		b.WriteString("\n" + lang.T(l, "menu_empty_category"))
	}
	for _, it := range items {
		rows = append(rows, []CardButton{
			btn(itemLabel(l, it), cbView(it.ID)),
			btn(favMark(st, it.ID), cbFav(it.ID)),
		})
	}
	if n := st.ItemCount(); n > 0 {
		rows = append(rows, []CardButton{btn(lang.T(l, "btn_view_cart", n), CbCart)})
	}
	return Card{Text: b.String(), Buttons: rows}
}

func detailCard(l string, st session.State, scr session.DetailScreen, c *Catalog) Card {
	it := scr.Item
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", it.Name, lang.Money(l, it.Price))
	b.WriteString(lang.T(l, "detail_rating", it.Rating, it.Reviews) + " · " + lang.T(l, "detail_calories", it.Calories) + "\n")
	if it.Description != "" {
		b.WriteString("\n" + it.Description + "\n")
	}
	if q := st.LineQuantity(it.ID); q > 0 {
		b.WriteString("\n" + lang.T(l, "detail_in_cart", q))
	}
	b.WriteString("\n" + lang.T(l, "detail_picker", scr.Quantity))

	favLabel := lang.T(l, "btn_fav_add")
	if st.IsFavorite(it.ID) {
		favLabel = lang.T(l, "btn_fav_remove")
	}
	rows := [][]CardButton{
		{btn("−", CbPick+"-1"), btn(strconv.Itoa(scr.Quantity), CbNoop), btn("+", CbPick+"+1")},
		{btn(lang.T(l, "btn_add", scr.Quantity), cbAdd(it.ID, scr.Quantity))},
		{btn(favLabel, cbFav(it.ID))},
	}

	sides := c.Recommended(it)
	if len(sides) > 0 {
		b.WriteString("\n\n" + lang.T(l, "detail_recommended"))
	}
	for _, side := range sides {
		q := st.LineQuantity(side.ID)
		fmt.Fprintf(&b, "\n• %s × %d", itemLabel(l, side), q)
		inc := cbQty(side.ID, q+1)
		if q == 0 {
			inc = cbAdd(side.ID, 1)
		}
		rows = append(rows, []CardButton{
			btn(side.Name, cbView(side.ID)),
			btn("−", cbQty(side.ID, q-1)),
			btn(strconv.Itoa(q), CbNoop),
			btn("+", inc),
		})
	}

	rows = append(rows, []CardButton{
		btn(lang.T(l, "btn_back"), CbBack),
		btn(lang.T(l, "btn_view_cart", st.ItemCount()), CbCart),
	})
	return Card{Text: b.String(), Buttons: rows}
}

func cartCard(l string, st session.State) Card {
	cart := st.Cart()
	var b strings.Builder
	b.WriteString(lang.T(l, "cart_title") + "\n\n")
	var rows [][]CardButton
	if len(cart) == 0 {
		b.WriteString(lang.T(l, "cart_empty_title") + "\n" + lang.T(l, "cart_empty_body"))
	}
	for _, ci := range cart {
		fmt.Fprintf(&b, "• %s × %d — %s\n", ci.Name, ci.Quantity, lang.Money(l, ci.LineTotal()))
		rows = append(rows, []CardButton{
			btn(ci.Name, cbView(ci.ID)),
			btn("−", cbQty(ci.ID, ci.Quantity-1)),
			btn(strconv.Itoa(ci.Quantity), CbNoop),
			btn("+", cbQty(ci.ID, ci.Quantity+1)),
		})
	}
	if len(cart) > 0 {
		b.WriteString("\n" + lang.T(l, "cart_subtotal", lang.Money(l, st.Subtotal())))
		b.WriteString("\n" + lang.T(l, "cart_delivery", lang.Money(l, st.DeliveryFee())))
		b.WriteString("\n" + lang.T(l, "cart_total", lang.Money(l, st.Total())))
		rows = append(rows, []CardButton{btn(lang.T(l, "btn_checkout"), CbCheckout)})
	}
	rows = append(rows, []CardButton{btn(lang.T(l, "btn_back"), CbBack)})
	return Card{Text: b.String(), Buttons: rows}
}

func paymentCard(l string, st session.State) Card {
	total := lang.Money(l, st.Total())
	return Card{
		Text: lang.T(l, "payment_title") + "\n\n" + lang.T(l, "payment_amount", total),
		Buttons: [][]CardButton{
			{btn(lang.T(l, "btn_pay", total), CbPay)},
			{btn(lang.T(l, "btn_back"), CbPayBack)},
		},
	}
}

func profileCard(l string) Card {
	return Card{
		Text: lang.T(l, "profile_title") + "\n\n" + lang.T(l, "profile_name") + "\n" + lang.T(l, "profile_email"),
		Buttons: [][]CardButton{
			{btn(lang.T(l, "btn_logout"), CbLogout)},
			{btn(lang.T(l, "btn_back"), CbBack)},
		},
	}
}

func favoritesCard(l string, st session.State, c *Catalog) Card {
	items := c.Favorites(st.Favorites())
	text := lang.T(l, "favorites_title")
	if len(items) == 0 {
		text += "\n\n" + lang.T(l, "favorites_empty")
	}
	var rows [][]CardButton
	for _, it := range items {
		rows = append(rows, []CardButton{
			btn(itemLabel(l, it), cbView(it.ID)),
			btn("♥", cbFav(it.ID)),
		})
	}
	rows = append(rows, []CardButton{
		btn(lang.T(l, "btn_back"), CbBack),
		btn(lang.T(l, "btn_view_cart", st.ItemCount()), CbCart),
	})
	return Card{Text: text, Buttons: rows}
}
