package models

// CartLine is one product in the cart. Name, Price and Category are
// copied from the product when the line is created.
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

// LineTotal is Price * Quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
