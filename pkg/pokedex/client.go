package pokedex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	pkgHttp "pokedex-srv/pkg/http"
)

// Client implements API over pkg/http.
type Client struct {
	http    pkgHttp.IClient
	baseURL string

	mu    sync.RWMutex
	token string
}

// NewClient creates an API client. Reads are retried with exponential
// backoff; writes are attempted once.
func NewClient(cfg ClientConfig) *Client {
	httpCfg := pkgHttp.DefaultConfig()
	httpCfg.Timeout = DefaultTimeout
	if cfg.Timeout > 0 {
		httpCfg.Timeout = cfg.Timeout
	}
	if cfg.Retries > 0 {
		httpCfg.Retries = cfg.Retries
	}
	if cfg.RetryWait > 0 {
		httpCfg.RetryWait = cfg.RetryWait
	}
	return newClient(cfg, pkgHttp.NewClient(httpCfg))
}

func newClient(cfg ClientConfig, hc pkgHttp.IClient) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: hc, baseURL: baseURL, token: cfg.Token}
}

// SetToken replaces the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ListPokemon - fetch one page of the catalog
func (c *Client) ListPokemon(ctx context.Context, params ListParams) (PokemonPage, error) {
	q := url.Values{}
	if params.AfterID != nil {
		q.Set("afterId", *params.AfterID)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.IncludeMoves {
		q.Set("includeMoves", "true")
	}
	u := c.baseURL + "/pokemon"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var page PokemonPage
	if err := c.get(ctx, u, &page); err != nil {
		return PokemonPage{}, err
	}
	return page, nil
}

// GetPokemon - fetch a Pokémon with types, abilities and moves
func (c *Client) GetPokemon(ctx context.Context, id string) (Pokemon, error) {
	if id == "" {
		return Pokemon{}, ErrEmptyID
	}
	var p Pokemon
	if err := c.get(ctx, c.baseURL+"/pokemon/"+url.PathEscape(id), &p); err != nil {
		return Pokemon{}, err
	}
	return p, nil
}

// ListMoves - fetch the moves a Pokémon learns, by level
func (c *Client) ListMoves(ctx context.Context, id string) ([]Move, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	var moves []Move
	if err := c.get(ctx, c.baseURL+"/pokemon/"+url.PathEscape(id)+"/moves", &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

// DeletePokemon - delete a Pokémon, admin only
func (c *Client) DeletePokemon(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	body, status, err := c.http.Delete(ctx, c.baseURL+"/pokemon/"+url.PathEscape(id), c.headers())
	if err != nil {
		return transportError(ctx, err)
	}
	return checkStatus(status, body)
}

// Login - exchange credentials for a session
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	return c.auth(ctx, "/auth/login", username, password)
}

// Register - create a viewer account and return its session
func (c *Client) Register(ctx context.Context, username, password string) (Session, error) {
	return c.auth(ctx, "/auth/register", username, password)
}

func (c *Client) auth(ctx context.Context, path, username, password string) (Session, error) {
	req := map[string]string{"username": username, "password": password}
	body, status, err := c.http.Post(ctx, c.baseURL+path, req, c.headers())
	if err != nil {
		return Session{}, transportError(ctx, err)
	}
	if err := checkStatus(status, body); err != nil {
		return Session{}, err
	}

	var env sessionEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	body, status, err := c.http.Get(ctx, u, c.headers())
	if err != nil {
		return transportError(ctx, err)
	}
	if err := checkStatus(status, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if token := c.Token(); token != "" {
		h["Authorization"] = "Bearer " + token
	}
	return h
}

func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return ctxErr
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func checkStatus(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}
	apiErr := &APIError{Status: status}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Code = env.ErrorCode
		apiErr.Message = env.Message
	}
	return apiErr
}

var _ API = (*Client)(nil)
