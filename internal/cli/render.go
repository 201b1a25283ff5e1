package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/phumgame/internal/cart"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/storefront"
)

var (
	colorOK    = lipgloss.Color("#8BC34A")
	colorError = lipgloss.Color("#E5534B")
	colorMuted = lipgloss.Color("#8B949E")
)

type styles struct {
	OK    lipgloss.Style
	Error lipgloss.Style
	Title lipgloss.Style
	Bold  lipgloss.Style
	Muted lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		OK:    lipgloss.NewStyle().Foreground(colorOK),
		Error: lipgloss.NewStyle().Foreground(colorError),
		Title: lipgloss.NewStyle().Bold(true).Underline(true),
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) result(r storefront.Result) string {
	if r.Success {
		return s.OK.Render(r.Message)
	}
	return s.Error.Render(r.Message)
}

// table renders rows under headers with padded columns.
type table struct {
	title   string
	headers []string
	rows    [][]string
}

func (t *table) add(row ...string) { t.rows = append(t.rows, row) }

func (t *table) render(s styles) string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	header := s.Bold.Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	sep := s.Muted.Render("|")

	var sb strings.Builder
	if t.title != "" {
		sb.WriteString(s.Title.Render(t.title))
		sb.WriteString("\n")
	}

	line := func(st lipgloss.Style, cols []string) {
		for i := range widths {
			v := ""
			if i < len(cols) {
				v = cols[i]
			}
			sb.WriteString(st.Width(widths[i] + 2).Render(v))
			if i < len(widths)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}

	line(header, t.headers)
	for _, row := range t.rows {
		line(cell, row)
	}
	return sb.String()
}

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }

func renderProducts(w io.Writer, s styles, v storefront.View) {
	t := &table{
		title:   fmt.Sprintf("Products (category: %s, sort: %s)", v.Criteria.Category, sortLabel(v)),
		headers: []string{"ID", "Name", "Category", "Price", "Stock"},
	}
	for _, p := range v.Products {
		t.add(fmt.Sprint(p.ID), p.Name, p.Category, money(p.Price), fmt.Sprintf("%d in stock", p.Stock))
	}
	fmt.Fprint(w, t.render(s))
}

func sortLabel(v storefront.View) string {
	if v.Criteria.Sort == "" {
		return "default"
	}
	return string(v.Criteria.Sort)
}

func renderCart(w io.Writer, s styles, lines []models.CartLine, sum cart.Summary) {
	if len(lines) == 0 {
		fmt.Fprintln(w, s.Muted.Render("Your cart is empty."))
		return
	}

	t := &table{title: "Cart", headers: []string{"ID", "Name", "Price", "Qty", "Total"}}
	for _, l := range lines {
		t.add(fmt.Sprint(l.ID), l.Name, money(l.Price), fmt.Sprint(l.Quantity), money(l.LineTotal()))
	}
	fmt.Fprint(w, t.render(s))

	fmt.Fprintf(w, "Subtotal: %s\nTax:      %s\nShipping: %s\n%s\n",
		money(sum.Subtotal), money(sum.Tax), money(sum.Shipping),
		s.Bold.Render("Total:    "+money(sum.Total)))
}

func renderOrders(w io.Writer, s styles, orders []models.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, s.Muted.Render("No orders yet."))
		return
	}

	t := &table{title: "Orders", headers: []string{"Order", "Date", "Items", "Total", "Status"}}
	for _, o := range orders {
		t.add(o.OrderID, o.OrderDate.Format("2006-01-02 15:04"), fmt.Sprint(cart.Count(o.Items)), money(o.Total), o.Status)
	}
	fmt.Fprint(w, t.render(s))
}
