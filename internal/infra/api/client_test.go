package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"orchid/config"
	"orchid/internal/domain/entity"
	domainerrors "orchid/internal/domain/errors"
	"orchid/internal/domain/service"
	"orchid/internal/domain/storage"
	infrastorage "orchid/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Success(msg string) { n.record(msg) }
func (n *recordingNotifier) Error(msg string)   { n.record(msg) }
func (n *recordingNotifier) Info(msg string)    { n.record(msg) }

func (n *recordingNotifier) record(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.messages...)
}

// clientFixtures holds all test dependencies for backend client tests.
type clientFixtures struct {
	client   *Client
	store    storage.Store
	notifier *recordingNotifier
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestClient(t *testing.T, handler http.Handler) clientFixtures {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := infrastorage.NewMem()
	notifier := &recordingNotifier{}

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second

	client, err := New(Params{
		Config:   cfg,
		Store:    store,
		Notifier: notifier,
		Logger:   newDiscardLogger(),
	})
	require.NoError(t, err)

	return clientFixtures{client: client, store: store, notifier: notifier}
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "/api"

	_, err := New(Params{
		Config:   cfg,
		Store:    infrastorage.NewMem(),
		Notifier: &recordingNotifier{},
		Logger:   newDiscardLogger(),
	})
	assert.Error(t, err)
}

func TestClient_AttachesBearerTokenWhenPresent(t *testing.T) {
	var authorization string

	e := echo.New()
	e.GET("/api/v1/orchids", func(c echo.Context) error {
		authorization = c.Request().Header.Get("Authorization")

		return c.JSON(http.StatusOK, []map[string]any{})
	})

	fx := createTestClient(t, e)
	ctx := context.Background()
	require.NoError(t, fx.store.Put(ctx, storage.KeyToken, []byte("tok-123")))

	_, err := fx.client.ListOrchids(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", authorization)
}

func TestClient_PublicRequestWithoutToken(t *testing.T) {
	var authorization string
	var requestID string

	e := echo.New()
	e.GET("/api/v1/orchids", func(c echo.Context) error {
		authorization = c.Request().Header.Get("Authorization")
		requestID = c.Request().Header.Get("X-Request-ID")

		return c.JSON(http.StatusOK, []map[string]any{})
	})

	fx := createTestClient(t, e)

	_, err := fx.client.ListOrchids(context.Background())
	require.NoError(t, err)
	assert.Empty(t, authorization)

	_, err = uuid.Parse(requestID)
	assert.NoError(t, err)
}

func TestClient_ForbiddenEvictsToken(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/orders/my-orders", func(c echo.Context) error {
		return c.JSON(http.StatusForbidden, map[string]any{
			"statusCode": 403,
			"message":    "Forbidden",
		})
	})

	fx := createTestClient(t, e)
	ctx := context.Background()
	require.NoError(t, fx.store.Put(ctx, storage.KeyToken, []byte("stale-token")))

	_, err := fx.client.MyOrders(ctx)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	_, err = fx.store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.Contains(t, fx.notifier.all(), "Authentication error. Please log in again.")
}

func TestClient_ListOrchids_AdaptsLooseFields(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/orchids", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"statusCode": 200,
			"message":    "ok",
			"data": []map[string]any{
				{
					"id":        17,
					"name":      "Phalaenopsis",
					"price":     120000,
					"orchidUrl": "https://img.example.com/17.jpg",
					"isNatural": true,
					"category":  map[string]any{"id": 3, "name": "Vanda"},
				},
				{
					"id":          "orc-2",
					"name":        "Dendrobium",
					"price":       95000,
					"url":         "https://img.example.com/orc-2.jpg",
					"natural":     false,
					"isAvailable": false,
				},
			},
		})
	})

	fx := createTestClient(t, e)

	orchids, err := fx.client.ListOrchids(context.Background())
	require.NoError(t, err)
	require.Len(t, orchids, 2)

	assert.Equal(t, "17", orchids[0].ID)
	assert.Equal(t, "https://img.example.com/17.jpg", orchids[0].ImageURL)
	assert.True(t, orchids[0].Natural)
	assert.True(t, orchids[0].Available)
	require.NotNil(t, orchids[0].Category)
	assert.Equal(t, "3", orchids[0].Category.ID)

	assert.Equal(t, "orc-2", orchids[1].ID)
	assert.False(t, orchids[1].Natural)
	assert.False(t, orchids[1].Available)
}

func TestClient_ListOrchids_BarePayloadWithoutEnvelope(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/orchids", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []map[string]any{
			{"id": "orc-1", "name": "Phalaenopsis", "price": 120000},
		})
	})

	fx := createTestClient(t, e)

	orchids, err := fx.client.ListOrchids(context.Background())
	require.NoError(t, err)
	require.Len(t, orchids, 1)
	assert.Equal(t, "Phalaenopsis", orchids[0].Name)
}

func TestClient_GetOrchid_NotFound(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/orchids/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{
			"statusCode": 404,
			"message":    "Orchid not found",
		})
	})

	fx := createTestClient(t, e)

	_, err := fx.client.GetOrchid(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClient_CreateOrder_SendsIdempotencyKey(t *testing.T) {
	var idempotencyKey string
	var received map[string]any

	e := echo.New()
	e.POST("/api/v1/orders/create", func(c echo.Context) error {
		idempotencyKey = c.Request().Header.Get("Idempotency-Key")
		if err := c.Bind(&received); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"statusCode": 200,
			"message":    "created",
			"data":       map[string]any{"orderId": 42},
		})
	})

	fx := createTestClient(t, e)

	orderID, err := fx.client.CreateOrder(context.Background(), service.CreateOrderRequest{
		Items:           []service.OrderLine{{OrchidID: "orc-1", Quantity: 2}},
		ShippingAddress: "12 Nguyen Hue, District 1",
		IdempotencyKey:  "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", orderID)
	assert.Equal(t, "key-1", idempotencyKey)

	// The key travels as a header, never in the body.
	assert.NotContains(t, received, "idempotencyKey")
	assert.Equal(t, "12 Nguyen Hue, District 1", received["shippingAddress"])
}

func TestClient_Login(t *testing.T) {
	e := echo.New()
	e.POST("/accounts/login", func(c echo.Context) error {
		var req map[string]string
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req["email"] != "mai@example.com" || req["password"] != "secret123" {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"statusCode": 401,
				"message":    "Invalid credentials",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"token": "jwt-token",
			"accountData": map[string]any{
				"id":    7,
				"name":  "Mai",
				"email": "mai@example.com",
				"role":  map[string]any{"name": "ROLE_ADMIN"},
			},
		})
	})

	fx := createTestClient(t, e)
	ctx := context.Background()

	token, account, err := fx.client.Login(ctx, "mai@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, "7", account.ID)
	assert.Equal(t, entity.RoleAdmin, account.Role)

	_, _, err = fx.client.Login(ctx, "mai@example.com", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestClient_GetOrder_DecodesDetails(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/orders/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"statusCode": 200,
			"message":    "ok",
			"data": map[string]any{
				"id":              "ord-1",
				"totalAmount":     330000,
				"orderDate":       "2026-08-30T14:05:00",
				"orderStatus":     "PENDING",
				"shippingAddress": "12 Nguyen Hue, District 1",
				"orderDetails": []map[string]any{
					{"orchidId": 17, "orchidName": "Phalaenopsis", "price": 100000, "quantity": 3},
				},
			},
		})
	})

	fx := createTestClient(t, e)

	order, err := fx.client.GetOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC), order.OrderDate)
	require.Len(t, order.Details, 1)
	assert.Equal(t, "17", order.Details[0].OrchidID)
	assert.InDelta(t, 100000, order.Details[0].UnitPrice, 0.001)
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	var received map[string]string

	e := echo.New()
	e.PUT("/api/v1/orders/:id/status", func(c echo.Context) error {
		if err := c.Bind(&received); err != nil {
			return err
		}

		return c.NoContent(http.StatusOK)
	})

	fx := createTestClient(t, e)

	err := fx.client.UpdateOrderStatus(context.Background(), "ord-1", entity.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"status": "SHIPPED"}, received)
}
