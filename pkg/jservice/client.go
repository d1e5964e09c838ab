package jservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Clue is a single question/answer pair as returned by the provider.
// Answer arrives untrimmed with its original markup intact.
type Clue struct {
	ID         int64    `json:"id"`
	Answer     string   `json:"answer"`
	Question   string   `json:"question"`
	Value      int      `json:"value"`
	CategoryID int64    `json:"category_id"`
	Category   Category `json:"category"`
}

type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Client fetches trivia questions from a jservice-style provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch issues a GET against the provider and returns the raw JSON body.
// Transport failures, non-200 statuses, empty bodies and non-JSON bodies
// all collapse into the returned error; the caller just sees "no value".
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	requestURL := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.logger.Debug("fetching trivia", slog.String("url", requestURL))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("response body is not valid JSON")
	}
	return body, nil
}

// Random fetches count random clues.
func (c *Client) Random(ctx context.Context, count int) ([]Clue, error) {
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))

	raw, err := c.Fetch(ctx, "api/random", params)
	if err != nil {
		return nil, err
	}
	var clues []Clue
	if err := json.Unmarshal(raw, &clues); err != nil {
		return nil, fmt.Errorf("decode clues: %w", err)
	}
	return clues, nil
}
