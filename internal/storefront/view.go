package storefront

import (
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/search"
)

// View is the product list the user is looking at together with the
// criteria that produced it. Transitions return a new View and always
// recompute from the full catalog, so the order in which criteria were
// changed does not matter.
type View struct {
	Criteria search.Criteria
	Lang     language.Tag
	Products []models.Product
}

// NewView shows the whole catalog in default order.
func NewView(all []models.Product, lang language.Tag) View {
	v := View{Criteria: search.Criteria{Category: search.CategoryAll}, Lang: lang}
	return v.recompute(all)
}

func (v View) WithSearch(all []models.Product, term string) View {
	v.Criteria.Search = term
	return v.recompute(all)
}

func (v View) WithCategory(all []models.Product, category string) View {
	v.Criteria.Category = category
	return v.recompute(all)
}

func (v View) WithSort(all []models.Product, mode search.SortMode) View {
	v.Criteria.Sort = mode
	return v.recompute(all)
}

// Empty reports the "no results" state.
func (v View) Empty() bool { return len(v.Products) == 0 }

func (v View) recompute(all []models.Product) View {
	v.Products = search.Apply(all, v.Criteria, v.Lang)
	return v
}
