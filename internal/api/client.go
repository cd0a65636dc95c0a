package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultLimit is the result count requested when a query does not set one.
const DefaultLimit = 5

// Client talks to the recipe service. Requests carry the caller's context;
// there is no retry or client-side timeout policy; a failed call surfaces
// its error and stops.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for the service at baseURL. A nil logger is
// replaced with a no-op one.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		logger:  logger,
	}
}

// QueryByIngredients runs GET /query_by_ingredients and returns the result
// rows.
func (c *Client) QueryByIngredients(ctx context.Context, q IngredientQuery) ([]Recipe, error) {
	params := url.Values{}
	params.Set("ingredients", strings.Join(q.Ingredients, ", "))
	params.Set("k", strconv.Itoa(limitOrDefault(q.K)))
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Cuisine != "" {
		params.Set("cuisine", q.Cuisine)
	}

	c.logger.Debug("querying by ingredients",
		zap.Strings("ingredients", q.Ingredients),
		zap.Int("k", limitOrDefault(q.K)))

	var resp struct {
		Results []Recipe `json:"results"`
	}
	if err := c.get(ctx, "/query_by_ingredients", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// QueryByName runs GET /query_by_name and returns the result rows.
func (c *Client) QueryByName(ctx context.Context, q NameQuery) ([]Recipe, error) {
	params := url.Values{}
	params.Set("name", q.Name)
	params.Set("k", strconv.Itoa(limitOrDefault(q.K)))
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Cuisine != "" {
		params.Set("cuisine", q.Cuisine)
	}
	for _, ing := range q.Ingredients {
		params.Add("ingredients", ing)
	}

	c.logger.Debug("querying by name", zap.String("name", q.Name))

	var resp struct {
		Results []Recipe `json:"results"`
	}
	if err := c.get(ctx, "/query_by_name", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Suggest runs GET /ingredients/suggestions. exclude lists tokens the caller
// already holds; the service will not return them.
func (c *Client) Suggest(ctx context.Context, query string, exclude []string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limitOrDefault(limit)))
	if len(exclude) > 0 {
		params.Set("exclude", strings.Join(exclude, ","))
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.get(ctx, "/ingredients/suggestions", params, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// AddRecipe submits a draft via POST /add and returns the new recipe id.
// The draft is expected to have passed Validate; the service re-checks and a
// rejection comes back as an *APIError carrying the response detail.
func (c *Client) AddRecipe(ctx context.Context, draft Draft) (int64, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/add", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("submitting recipe", zap.String("name", draft.Name))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("add request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, responseError(resp)
	}

	var result struct {
		RecipeID int64 `json:"recipe_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.RecipeID, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// responseError turns a non-2xx response into an *APIError, preferring the
// service's own detail message when the body carries one.
func responseError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &detail) == nil {
			apiErr.Detail = detail.Detail
		}
	}
	return apiErr
}

func limitOrDefault(k int) int {
	if k <= 0 {
		return DefaultLimit
	}
	return k
}
