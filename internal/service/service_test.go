package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bestsellers/landing/internal/client"
	"bestsellers/landing/internal/config"
	"bestsellers/landing/internal/domain"
	"bestsellers/landing/internal/page"
	"bestsellers/landing/internal/render"

	"github.com/PuerkitoBio/goquery"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoCategories = `{
  "categories": [
    {"name": "Livros", "products": []},
    {
      "name": "Games",
      "products": [
        {"title": "Console", "image_url": "https://img.example/1.jpg", "url": "https://shop.example/1", "price": {"current": 3999.9}},
        {"title": "Controle", "image_url": "https://img.example/2.jpg", "url": "https://shop.example/2", "price": {"current": 349}},
        {"title": "Jogo", "image_url": "https://img.example/3.jpg", "url": "https://shop.example/3", "price": {"current": 199.9, "original": 249.9, "discount_percent": 20}}
      ]
    }
  ]
}`

func newService(t *testing.T, c client.CatalogClient) (*Service, *page.Page) {
	t.Helper()
	pg, err := page.New()
	require.NoError(t, err)
	r, err := render.New()
	require.NoError(t, err)
	return NewService(c, r, pg, clock.New(), 20*time.Millisecond, 2*time.Millisecond), pg
}

func httpClient(t *testing.T, status int, body string) client.CatalogClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := client.NewCatalogClient(config.CatalogConfig{DataURL: srv.URL, Timeout: 5})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func document(t *testing.T, pg *page.Page) *goquery.Document {
	t.Helper()
	html, err := pg.HTML()
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestInitRendersOnlyNonEmptyCategories(t *testing.T) {
	svc, pg := newService(t, httpClient(t, http.StatusOK, twoCategories))

	st, err := svc.Init(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.AnimateCounters(context.Background(), st))

	doc := document(t, pg)
	assert.Equal(t, 1, doc.Find("#categoriesList .category-btn").Length())
	assert.Equal(t, 1, doc.Find("#productsContainer .category-section").Length())
	assert.Equal(t, 3, doc.Find(".product-card").Length())
	assert.Equal(t, "3", pg.Text(page.TotalProducts))
	assert.Equal(t, "1", pg.Text(page.TotalCategories))
	assert.True(t, pg.LoadingHidden())
	assert.Equal(t, "games", st.Active)
}

func TestInitServerErrorShowsMessage(t *testing.T) {
	svc, pg := newService(t, httpClient(t, http.StatusInternalServerError, ""))

	st, err := svc.Init(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrFetchFailure)
	assert.Empty(t, st.Categories)

	doc := document(t, pg)
	assert.Equal(t, "Ocorreu um erro ao carregar a página. Por favor, tente novamente.",
		doc.Find(".products__error-message").Text())
	assert.Equal(t, 1, doc.Find(".products__error").Length())
	assert.True(t, pg.LoadingHidden())
	assert.Equal(t, 0, doc.Find(".category-btn").Length())
	assert.Equal(t, 0, doc.Find(".category-section").Length())
	assert.Equal(t, 0, doc.Find(".product-card").Length())
}

func TestInitFormatErrorShowsGenericMessage(t *testing.T) {
	svc, pg := newService(t, httpClient(t, http.StatusOK, `{"products": []}`))

	_, err := svc.Init(context.Background())
	assert.ErrorIs(t, err, client.ErrFormatFailure)

	doc := document(t, pg)
	assert.Equal(t, initErrorMessage, doc.Find(".products__error-message").Text())
	assert.True(t, pg.LoadingHidden())
	assert.Equal(t, 0, doc.Find(".category-btn").Length())
}

type panickingClient struct{}

func (panickingClient) GetCatalog(context.Context) (*domain.Catalog, error) { panic("boom") }
func (panickingClient) Close() error                                        { return nil }

func TestInitRecoversFromPanic(t *testing.T) {
	svc, pg := newService(t, panickingClient{})

	st, err := svc.Init(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.NotNil(t, st)
	assert.True(t, pg.LoadingHidden())
	assert.Equal(t, initErrorMessage, document(t, pg).Find(".products__error-message").Text())
}
