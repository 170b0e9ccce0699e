// Package questionbank holds the per-source question-pool cache.
package questionbank

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coding-online/certexam/internal/model"
	"github.com/coding-online/certexam/internal/questioncsv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves the raw CSV text for one source URL.
type Fetcher func(ctx context.Context, url string) (string, error)

// Bank caches parsed question pools keyed by source URL. Concurrent first
// fetches for the same key collapse to a single in-flight parse; successful
// parses are cached for the lifetime of the process, failures are not.
type Bank struct {
	fetch Fetcher
	group singleflight.Group

	mu    sync.RWMutex
	pools map[string][]model.Question
}

func New(fetch Fetcher) *Bank {
	return &Bank{
		fetch: fetch,
		pools: make(map[string][]model.Question),
	}
}

// GetOrFetch returns the cached pool for url, fetching and parsing it on the
// first call. Callers must not mutate the returned slice.
func (b *Bank) GetOrFetch(ctx context.Context, url string) ([]model.Question, error) {
	b.mu.RLock()
	pool, ok := b.pools[url]
	b.mu.RUnlock()
	if ok {
		return pool, nil
	}

	result, err, _ := b.group.Do(url, func() (interface{}, error) {
		// Re-check under the flight: another caller may have populated the
		// cache between the read lock and Do.
		b.mu.RLock()
		cached, ok := b.pools[url]
		b.mu.RUnlock()
		if ok {
			return cached, nil
		}

		raw, err := b.fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("fetching question source: %w", err)
		}
		questions, err := questioncsv.Parse(raw)
		if err != nil {
			return nil, err
		}

		b.mu.Lock()
		b.pools[url] = questions
		b.mu.Unlock()

		log.Info().Str("source", url).Int("questions", len(questions)).Msg("Question pool loaded")
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]model.Question), nil
}

// NewHTTPFetcher builds the default fetcher: a plain GET with a cache-busting
// query parameter (published sheets sit behind aggressive CDN caching) and a
// content-type check so an HTML error page is not fed to the parser.
func NewHTTPFetcher(client *http.Client) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return func(ctx context.Context, url string) (string, error) {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s_=%d", url, sep, time.Now().UnixMilli()), nil)
		if err != nil {
			return "", err
		}

		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("question source returned status %s", resp.Status)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/csv") {
			return "", fmt.Errorf("question source returned unexpected content type %q", ct)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}
}
