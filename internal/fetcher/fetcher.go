// Package fetcher implements the Jikan (MyAnimeList) metadata client. It
// resolves a series title to a MAL entry, fetches its episode list, and
// exposes the result as a title map for the rename pipeline.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"

	"github.com/zenrename/zenrename/internal/config"
	"github.com/zenrename/zenrename/internal/types"
)

// PickFunc chooses one candidate from a non-empty search result list.
// Returning an error falls back to the first candidate.
type PickFunc func(ctx context.Context, candidates []types.SearchCandidate) (types.SearchCandidate, error)

// Client talks to the Jikan API with rate limiting and an in-memory
// response cache, so repeated lookups in one process hit the network once.
type Client struct {
	http        *http.Client
	baseURL     string
	delay       time.Duration
	searchLimit int
	cache       *cache.Cache

	// Progress enables a progress bar over episode pagination.
	Progress bool

	// Pick, when set, chooses among multiple search candidates. Nil
	// keeps the first result.
	Pick PickFunc
}

// New builds a client from API settings.
func New(cfg config.APIConfig) *Client {
	return &Client{
		http: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		delay:       time.Duration(cfg.RateLimit * float64(time.Second)),
		searchLimit: cfg.SearchLimit,
		cache:       cache.New(30*time.Minute, 10*time.Minute),
	}
}

// getJSON performs one rate-limited GET and decodes the response body.
// A 429 reply is retried once after a longer sleep.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	retried := false
	for {
		time.Sleep(c.delay)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return fmt.Errorf("failed to build Jikan request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("failed to reach Jikan API: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && !retried {
			resp.Body.Close()
			retried = true
			time.Sleep(2 * c.delay)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return types.ErrAPIError{Service: "jikan", StatusCode: resp.StatusCode, Message: resp.Status}
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to parse Jikan API response: %w", err)
		}
		return nil
	}
}

// SearchSeries looks up a series title and returns the top candidates.
func (c *Client) SearchSeries(ctx context.Context, query string) ([]types.SearchCandidate, error) {
	cacheKey := "search:" + query
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]types.SearchCandidate), nil
	}

	u := fmt.Sprintf("%s/anime?%s", c.baseURL, url.Values{
		"q":     {query},
		"limit": {fmt.Sprint(c.searchLimit)},
	}.Encode())

	var result struct {
		Data []struct {
			MalID    int    `json:"mal_id"`
			Title    string `json:"title"`
			Year     *int   `json:"year"`
			Type     string `json:"type"`
			Episodes *int   `json:"episodes"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}

	candidates := make([]types.SearchCandidate, 0, len(result.Data))
	for _, d := range result.Data {
		cand := types.SearchCandidate{MALID: d.MalID, Title: d.Title, Type: d.Type}
		if d.Year != nil {
			cand.Year = *d.Year
		}
		if d.Episodes != nil {
			cand.Episodes = *d.Episodes
		}
		candidates = append(candidates, cand)
	}

	c.cache.Set(cacheKey, candidates, cache.DefaultExpiration)
	return candidates, nil
}

// Episodes fetches every episode of a MAL entry, following pagination.
func (c *Client) Episodes(ctx context.Context, malID int) (map[int]string, error) {
	cacheKey := fmt.Sprintf("episodes:%d", malID)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(map[int]string), nil
	}

	episodes := make(map[int]string)
	page := 1
	lastPage := 1
	var bar *progressbar.ProgressBar

	for page <= lastPage {
		u := fmt.Sprintf("%s/anime/%d/episodes?page=%d", c.baseURL, malID, page)

		var result struct {
			Data []struct {
				MalID int    `json:"mal_id"`
				Title string `json:"title"`
			} `json:"data"`
			Pagination struct {
				LastVisiblePage int  `json:"last_visible_page"`
				HasNextPage     bool `json:"has_next_page"`
			} `json:"pagination"`
		}
		if err := c.getJSON(ctx, u, &result); err != nil {
			return nil, err
		}

		for _, ep := range result.Data {
			episodes[ep.MalID] = ep.Title
		}

		lastPage = result.Pagination.LastVisiblePage
		if lastPage == 0 {
			lastPage = page
		}

		if c.Progress && bar == nil && lastPage > 1 {
			bar = progressbar.NewOptions(lastPage,
				progressbar.OptionSetDescription("Fetching episodes"),
				progressbar.OptionSetWidth(50),
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
				progressbar.OptionSetItsString("pages"),
			)
		}
		if bar != nil {
			bar.Add(1)
		}

		if !result.Pagination.HasNextPage && page >= lastPage {
			break
		}
		page++
	}

	c.cache.Set(cacheKey, episodes, cache.DefaultExpiration)
	return episodes, nil
}

// Titles implements types.TitleSource: search, pick a candidate, fetch
// its episodes and key the resulting map under the requested series and
// season.
func (c *Client) Titles(ctx context.Context, series string, season int) (types.TitleMap, error) {
	candidates, err := c.SearchSeries(ctx, series)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no Jikan results for %q", series)
	}

	chosen := candidates[0]
	if c.Pick != nil && len(candidates) > 1 {
		if picked, err := c.Pick(ctx, candidates); err == nil {
			chosen = picked
		}
	}

	episodes, err := c.Episodes(ctx, chosen.MALID)
	if err != nil {
		return nil, err
	}

	m := types.TitleMap{}
	for num, title := range episodes {
		m.Add(series, season, num, title)
	}
	return m, nil
}
