// Package storage implements the persistent key-value store on top of a
// gocloud blob bucket. Keys map to blobs in a local directory, which gives
// the client durable, per-user state with no database.
package storage

import (
	"context"
	"sync"

	"orchid/config"
	"orchid/internal/domain/storage"
	"orchid/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Params defines the parameters required for the file-backed store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type blobStore struct {
	bucket *blob.Bucket

	mu     sync.Mutex
	nextID int
	subs   map[int]func(key string)
}

// New opens the file-backed store under the configured directory and closes
// it on shutdown.
func New(params Params) (storage.Store, error) {
	bucket, err := fileblob.OpenBucket(params.Config.Storage.Dir, &fileblob.Options{
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open store at %s", params.Config.Storage.Dir)
	}

	store := newBlobStore(bucket)

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// NewMem returns an in-memory store with the same contract, for tests.
func NewMem() storage.Store {
	return newBlobStore(memblob.OpenBucket(nil))
}

func newBlobStore(bucket *blob.Bucket) *blobStore {
	return &blobStore{
		bucket: bucket,
		subs:   make(map[int]func(key string)),
	}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, storage.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *blobStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	s.notify(key)

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			// Deleting an absent key is a no-op, and still broadcast so
			// observers re-derive their state.
			s.notify(key)

			return nil
		}

		return errors.Wrapf(err, "delete %s", key)
	}

	s.notify(key)

	return nil
}

func (s *blobStore) Subscribe(fn func(key string)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *blobStore) notify(key string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}
