package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"orchid/config"
	"orchid/internal/domain/entity"
	"orchid/internal/domain/storage"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Shipping: &config.ShippingConfig{
			FreeThreshold: 500000,
			FlatFee:       30000,
			Currency:      "VND",
		},
	}
}

// recordingNotifier captures notifications so tests can assert on the exact
// user-facing wording.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Success(msg string) { n.record("ok", msg) }
func (n *recordingNotifier) Error(msg string)   { n.record("error", msg) }
func (n *recordingNotifier) Info(msg string)    { n.record("info", msg) }

func (n *recordingNotifier) record(level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, level+": "+msg)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.messages...)
}

// faultyStore wraps a Store and fails writes on demand.
type faultyStore struct {
	storage.Store
	putErr    error
	deleteErr error
}

func (s *faultyStore) Put(ctx context.Context, key string, data []byte) error {
	if s.putErr != nil {
		return s.putErr
	}

	return s.Store.Put(ctx, key, data)
}

func (s *faultyStore) Delete(ctx context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}

	return s.Store.Delete(ctx, key)
}

func testOrchid(id, name string, price float64) entity.Orchid {
	return entity.Orchid{
		ID:        id,
		Name:      name,
		Price:     price,
		ImageURL:  "https://img.example.com/" + id + ".jpg",
		Available: true,
	}
}
