package cart

import (
	"math"

	"github.com/dmitrijs2005/phumgame/internal/models"
)

// Summary is the priced view of a cart shown before checkout.
type Summary struct {
	Items    int
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// Count is the sum of line quantities.
func Count(lines []models.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of price * quantity over all lines.
func Subtotal(lines []models.CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}

// Summarize prices lines with a proportional tax and a flat shipping fee.
// An empty cart costs nothing, shipping included. Amounts are rounded to
// cents.
func Summarize(lines []models.CartLine, taxRate, shipping float64) Summary {
	s := Summary{Items: Count(lines)}
	if s.Items == 0 {
		return s
	}

	s.Subtotal = RoundCents(Subtotal(lines))
	s.Tax = RoundCents(s.Subtotal * taxRate)
	s.Shipping = RoundCents(shipping)
	s.Total = RoundCents(s.Subtotal + s.Tax + s.Shipping)
	return s
}

// RoundCents rounds v to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
