package api

import (
	"log/slog"
	"net/http"

	"orchid/internal/domain/storage"
	"orchid/internal/errors"
	"orchid/internal/notify"

	"github.com/google/uuid"
)

// authTransport intercepts every outgoing request and every inbound
// response. Outgoing: attach the persisted bearer token when one exists
// (absence is fine, some endpoints are public) and tag the request with an
// id. Inbound: a 401 or 403 evicts the persisted token and raises a
// user-facing notification; the response itself passes through unmodified
// so the caller keeps its own failure handling.
type authTransport struct {
	base     http.RoundTripper
	store    storage.Store
	notifier notify.Notifier
	logger   *slog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	token, err := t.store.Get(req.Context(), storage.KeyToken)
	if err == nil && len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+string(token))
	} else if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		t.logger.Warn("failed to read token from store", slog.Any("error", err))
	}

	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.New().String())
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		t.notifier.Error("Authentication error. Please log in again.")
		if delErr := t.store.Delete(req.Context(), storage.KeyToken); delErr != nil {
			t.logger.Warn("failed to evict token", slog.Any("error", delErr))
		}
	}

	return resp, nil
}
