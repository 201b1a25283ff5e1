package catalog

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/netx"
)

// HTTPSource downloads the catalog with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
}

func (h *HTTPSource) Load(ctx context.Context) ([]models.Product, error) {
	body, err := netx.Fetch(ctx, h.Client, h.URL)
	if err != nil {
		return nil, err
	}

	name := h.URL
	if u, err := url.Parse(h.URL); err == nil {
		name = u.Path
	}
	return Decode(body, FormatOf(name))
}
