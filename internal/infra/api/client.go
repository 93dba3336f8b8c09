// Package api is the HTTP client facade for the orchid backend. It owns the
// one configured request pipeline: bearer-token attachment, auth-failure
// interception, envelope decoding and wire-shape adaptation all happen here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"orchid/config"
	"orchid/internal/domain/entity"
	domainerrors "orchid/internal/domain/errors"
	"orchid/internal/domain/service"
	"orchid/internal/domain/storage"
	"orchid/internal/errors"
	"orchid/internal/notify"

	"go.uber.org/fx"
)

// Params defines the parameters required for the backend client.
type Params struct {
	fx.In

	Config   *config.Config
	Store    storage.Store
	Notifier notify.Notifier
	Logger   *slog.Logger
}

// Client implements every backend-facing service interface over one shared
// http.Client.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *slog.Logger
}

var (
	_ service.CatalogAPI  = (*Client)(nil)
	_ service.OrderAPI    = (*Client)(nil)
	_ service.AccountAPI  = (*Client)(nil)
	_ service.CategoryAPI = (*Client)(nil)
)

// New is the constructor for Client.
func New(params Params) (*Client, error) {
	base, err := url.Parse(params.Config.API.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api base url %q", params.Config.API.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("api base url %q must be absolute", params.Config.API.BaseURL)
	}

	return &Client{
		http: &http.Client{
			Timeout: params.Config.API.Timeout,
			Transport: &authTransport{
				base:     http.DefaultTransport,
				store:    params.Store,
				notifier: params.Notifier,
				logger:   params.Logger,
			},
		},
		baseURL: strings.TrimRight(base.String(), "/"),
		logger:  params.Logger,
	}, nil
}

// envelope is the backend's uniform response wrapper. Some endpoints answer
// with the bare payload instead; do tolerates both.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Reason     string          `json:"reason"`
	Timestamp  string          `json:"timestamp"`
}

type requestOptions struct {
	header http.Header
}

func withHeader(key, value string) func(*requestOptions) {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = http.Header{}
		}
		o.header.Set(key, value)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...func(*requestOptions)) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}
	for key, values := range options.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s response", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	return c.decodePayload(raw, out)
}

func (c *Client) decodeError(status int, raw []byte) error {
	apiErr := &Error{Status: status, Message: http.StatusText(status)}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		apiErr.Message = env.Message
		apiErr.Reason = env.Reason
	} else if msg := strings.TrimSpace(string(raw)); msg != "" && !strings.HasPrefix(msg, "{") {
		apiErr.Reason = msg
	}

	return apiErr
}

// notFoundAs translates a backend 404 into the given domain sentinel so
// callers can branch with errors.Is without importing this package. Every
// other error passes through unchanged.
func notFoundAs(err error, sentinel error, format string, args ...any) error {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return errors.Wrapf(sentinel, format, args...)
	}

	return err
}

// decodePayload unwraps the response envelope when present and decodes the
// payload into out. Endpoints that skip the envelope decode directly.
func (c *Client) decodePayload(raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && env.StatusCode != 0 {
		raw = env.Data
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "decode response payload")
	}

	return nil
}

// --- catalog ---

func (c *Client) ListOrchids(ctx context.Context) ([]entity.Orchid, error) {
	var wire []orchidWire
	if err := c.do(ctx, http.MethodGet, "/api/v1/orchids", nil, &wire); err != nil {
		return nil, err
	}

	orchids := make([]entity.Orchid, 0, len(wire))
	for _, w := range wire {
		orchids = append(orchids, w.toEntity())
	}

	return orchids, nil
}

func (c *Client) GetOrchid(ctx context.Context, id string) (*entity.Orchid, error) {
	var wire orchidWire
	if err := c.do(ctx, http.MethodGet, "/api/v1/orchids/"+url.PathEscape(id), nil, &wire); err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound, "orchid %s", id)
	}

	orchid := wire.toEntity()

	return &orchid, nil
}

func (c *Client) CreateOrchid(ctx context.Context, o entity.Orchid) error {
	return c.do(ctx, http.MethodPost, "/api/v1/orchids", orchidRequestFrom(o), nil)
}

func (c *Client) UpdateOrchid(ctx context.Context, id string, o entity.Orchid) error {
	return c.do(ctx, http.MethodPut, "/api/v1/orchids/"+url.PathEscape(id), orchidRequestFrom(o), nil)
}

func (c *Client) DeleteOrchid(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/orchids/"+url.PathEscape(id), nil, nil)
}

// --- orders ---

func (c *Client) CreateOrder(ctx context.Context, req service.CreateOrderRequest) (string, error) {
	var opts []func(*requestOptions)
	if req.IdempotencyKey != "" {
		opts = append(opts, withHeader("Idempotency-Key", req.IdempotencyKey))
	}

	var resp createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/orders/create", req, &resp, opts...); err != nil {
		return "", err
	}
	if resp.orderID() == "" {
		return "", errors.New("backend did not return an order id")
	}

	return resp.orderID(), nil
}

func (c *Client) MyOrders(ctx context.Context) ([]entity.Order, error) {
	var wire []orderWire
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders/my-orders", nil, &wire); err != nil {
		return nil, err
	}

	orders := make([]entity.Order, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, w.toEntity())
	}

	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	var wire orderWire
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders/"+url.PathEscape(id), nil, &wire); err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound, "order %s", id)
	}

	order := wire.toEntity()

	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	body := map[string]string{"status": status.String()}

	return c.do(ctx, http.MethodPut, "/api/v1/orders/"+url.PathEscape(id)+"/status", body, nil)
}

// --- accounts ---

func (c *Client) Login(ctx context.Context, email, password string) (string, *entity.Account, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/accounts/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	if resp.Token == "" {
		return "", nil, errors.New("backend did not return a token")
	}

	account := resp.AccountData.toEntity()

	return resp.Token, &account, nil
}

func (c *Client) CreateAccount(ctx context.Context, req service.AccountRequest) error {
	return c.do(ctx, http.MethodPost, "/accounts/create", req, nil)
}

func (c *Client) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	var wire []accountWire
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, &wire); err != nil {
		return nil, err
	}

	accounts := make([]entity.Account, 0, len(wire))
	for _, w := range wire {
		accounts = append(accounts, w.toEntity())
	}

	return accounts, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id string, req service.AccountRequest) error {
	return c.do(ctx, http.MethodPut, "/accounts/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/accounts/"+url.PathEscape(id), nil, nil)
}

// --- categories ---

func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var wire []categoryWire
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &wire); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(wire))
	for _, w := range wire {
		categories = append(categories, w.toEntity())
	}

	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/categories", map[string]string{"name": name}, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id, name string) error {
	return c.do(ctx, http.MethodPut, "/api/v1/categories/"+url.PathEscape(id), map[string]string{"name": name}, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/categories/"+url.PathEscape(id), nil, nil)
}
