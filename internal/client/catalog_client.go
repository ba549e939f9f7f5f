package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"bestsellers/landing/internal/config"
	"bestsellers/landing/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

var (
	// ErrFetchFailure covers transport errors, non-success statuses and unreadable files.
	ErrFetchFailure = errors.New("catalog fetch failed")
	// ErrFormatFailure is returned when the payload lacks the expected categories structure.
	ErrFormatFailure = errors.New("invalid catalog format")
)

type CatalogClient interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
	Close() error
}

type catalogClient struct {
	dataURL    string
	httpClient *resty.Client
	parser     *catalogParser
}

func NewCatalogClient(cfg config.CatalogConfig) CatalogClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &catalogClient{
		dataURL:    cfg.DataURL,
		httpClient: client,
		parser:     newCatalogParser(),
	}
}

// GetCatalog performs the single retrieval of the catalog. There is no retry:
// a failure is final for the lifetime of the page.
func (c *catalogClient) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	payload, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := c.parser.ParseCatalog(payload)
	if err != nil {
		return nil, err
	}

	log.Debugf("Fetched catalog from %s with %d categories", c.dataURL, len(catalog.Categories))
	return catalog, nil
}

func (c *catalogClient) Close() error {
	return c.httpClient.Close()
}

func (c *catalogClient) fetch(ctx context.Context) ([]byte, error) {
	if !isRemote(c.dataURL) {
		payload, err := os.ReadFile(c.dataURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
		}
		return payload, nil
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(c.dataURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: request cancelled: %w", ErrFetchFailure, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: HTTP error: %s", ErrFetchFailure, resp.Status())
	}

	return []byte(resp.String()), nil
}

func isRemote(dataURL string) bool {
	u, err := url.Parse(dataURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
