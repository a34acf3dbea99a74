package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/craftrules-go/internal/application/common"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = time.Second
)

// GameClient fetches catalog and player snapshots from the game backend.
// Requests are rate limited and retried with exponential backoff + jitter.
type GameClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	validate    *validator.Validate
	baseURL     string
	token       string
	maxRetries  int
	backoffBase time.Duration
}

// NewGameClient creates a client for the given backend.
// Rate limit: 4 requests per second with burst of 4.
func NewGameClient(baseURL, token string) *GameClient {
	return NewGameClientWithConfig(baseURL, token, defaultTimeout, defaultMaxRetries, defaultBackoffBase)
}

// NewGameClientWithConfig creates a client with custom timeout/retry settings.
func NewGameClientWithConfig(baseURL, token string, timeout time.Duration, maxRetries int, backoffBase time.Duration) *GameClient {
	return &GameClient{
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(4), 4),
		validate:    validator.New(),
		baseURL:     baseURL,
		token:       token,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
	}
}

// FetchMaterials retrieves the material catalog. Records failing
// validation are skipped, not fatal: the client must stay usable against
// a partially broken backend payload.
func (c *GameClient) FetchMaterials(ctx context.Context) ([]*catalog.Material, error) {
	var response struct {
		Data []*catalog.Material `json:"data"`
	}
	if err := c.get(ctx, "/materials", &response); err != nil {
		return nil, err
	}

	materials := make([]*catalog.Material, 0, len(response.Data))
	for _, m := range response.Data {
		if m == nil {
			continue
		}
		if err := c.validate.Struct(m); err != nil {
			c.logSkipped(ctx, "material", m.ID, err)
			continue
		}
		materials = append(materials, m)
	}
	return materials, nil
}

// FetchRecipes retrieves the recipe catalog with embedded ingredients.
func (c *GameClient) FetchRecipes(ctx context.Context) ([]*catalog.Recipe, error) {
	var response struct {
		Data []*catalog.Recipe `json:"data"`
	}
	if err := c.get(ctx, "/recipes", &response); err != nil {
		return nil, err
	}

	recipes := make([]*catalog.Recipe, 0, len(response.Data))
	for _, r := range response.Data {
		if r == nil {
			continue
		}
		if err := c.validate.Struct(r); err != nil {
			c.logSkipped(ctx, "recipe", r.ID, err)
			continue
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// FetchInventory retrieves the player's inventory entries.
func (c *GameClient) FetchInventory(ctx context.Context) ([]*inventory.Entry, error) {
	var response struct {
		Data []*inventory.Entry `json:"data"`
	}
	if err := c.get(ctx, "/player/inventory", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// FetchWorkstations retrieves the player's owned workstations.
func (c *GameClient) FetchWorkstations(ctx context.Context) ([]*inventory.OwnedWorkstation, error) {
	var response struct {
		Data []*inventory.OwnedWorkstation `json:"data"`
	}
	if err := c.get(ctx, "/player/workstations", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// FetchPlayerState retrieves the player's resource state.
func (c *GameClient) FetchPlayerState(ctx context.Context) (*inventory.PlayerResourceState, error) {
	var response struct {
		Data inventory.PlayerResourceState `json:"data"`
	}
	if err := c.get(ctx, "/player/state", &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// get performs a rate-limited GET with retries on 429 and 5xx.
func (c *GameClient) get(ctx context.Context, path string, out interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.backoffBase * time.Duration(1<<(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(c.backoffBase)))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return err
		}

		status, err := c.doRequest(ctx, path, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if status != http.StatusTooManyRequests && (status < 500 || status > 599) && status != 0 {
			return err
		}
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *GameClient) doRequest(ctx context.Context, path string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return resp.StatusCode, fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func (c *GameClient) logSkipped(ctx context.Context, kind string, id int, err error) {
	common.LoggerFromContext(ctx).Log("WARN", "skipping invalid record", map[string]interface{}{
		"kind":  kind,
		"id":    id,
		"error": err.Error(),
	})
}
