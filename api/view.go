package api

import (
	"food-app/models"
	"food-app/session"
)

// View is the read-only projection of a session sent to clients.
type View struct {
	Screen       string            `json:"screen"`
	Category     models.Category   `json:"category,omitempty"`
	SelectedItem *models.FoodItem  `json:"selected_item,omitempty"`
	Quantity     int               `json:"picker_quantity,omitempty"`
	Cart         []models.CartItem `json:"cart"`
	Favorites    []int             `json:"favorites"`
	ItemCount    int               `json:"item_count"`
	Subtotal     int64             `json:"subtotal"`
	DeliveryFee  int64             `json:"delivery_fee"`
	Total        int64             `json:"total"`
	Notice       session.Notice    `json:"notice,omitempty"`
}

func NewView(st session.State, notice session.Notice) View {
	v := View{
		Screen:      st.Screen().Kind().String(),
		Cart:        st.Cart(),
		Favorites:   st.Favorites(),
		ItemCount:   st.ItemCount(),
		Subtotal:    st.Subtotal(),
		DeliveryFee: st.DeliveryFee(),
		Total:       st.Total(),
		Notice:      notice,
	}
	switch scr := st.Screen().(type) {
	case session.MenuScreen:
		v.Category = scr.Category
	case session.DetailScreen:
		item := scr.Item
		v.SelectedItem = &item
		v.Quantity = scr.Quantity
	}
	return v
}
