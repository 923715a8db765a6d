// Package vocabsource fetches the published vocabulary catalog over HTTP.
// The catalog is a single JSON document of versioned, localized word groups.
package vocabsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ErrCatalogUnavailable is returned when the catalog endpoint cannot be
// reached or answers with a non-success status.
var ErrCatalogUnavailable = errors.New("vocabulary catalog unavailable")

// Catalog is the root of the published vocabulary document.
type Catalog struct {
	Vocabulary struct {
		Groups []GroupPayload `json:"groups"`
	} `json:"vocabulary"`
}

// GroupPayload is one word group as published upstream.
type GroupPayload struct {
	ID      int           `json:"id"`
	Name    LocalizedName `json:"name"`
	Version int           `json:"version"`
	Words   []WordPayload `json:"words"`
}

// LocalizedName holds the group title in each supported UI language.
type LocalizedName struct {
	EN string `json:"en"`
	RU string `json:"ru"`
}

// WordPayload is one vocabulary entry as published upstream. IDs are only
// unique within their group.
type WordPayload struct {
	ID      int    `json:"id"`
	Greek   string `json:"gr"`
	English string `json:"en"`
	Russian string `json:"ru"`
}

// Client downloads and decodes the vocabulary catalog.
type Client struct {
	sourceURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client for the given source URL.
// If logger is nil, a default logger will be used.
func NewClient(sourceURL string, logger *slog.Logger) *Client {
	if sourceURL == "" {
		panic("sourceURL cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		sourceURL: sourceURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With(slog.String("component", "vocab_source")),
	}
}

// FetchCatalog downloads the catalog and returns its groups.
// Returns ErrCatalogUnavailable for transport failures and non-2xx statuses.
func (c *Client) FetchCatalog(ctx context.Context) ([]GroupPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog fetch failed",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body",
				slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("catalog fetch returned error status",
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	var catalog Catalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c.logger.Debug("catalog fetched",
		slog.Int("groups", len(catalog.Vocabulary.Groups)))
	return catalog.Vocabulary.Groups, nil
}
