// Package blobsink provides an io.Writer which lands a byte stream in a
// content-addressed store as an ordered sequence of fixed size blobs.
package blobsink

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"go.brendoncarroll.net/state/cadata"
	"golang.org/x/crypto/blake2b"
)

type (
	Store = cadata.Store
	ID    = cadata.ID
)

const (
	DefaultBlobSize  = 1 << 20
	DefaultCacheSize = 32
)

// Hash is the hash function used to address blobs.
// Stores used with a Sink must hash the same way.
func Hash(x []byte) ID {
	return blake2b.Sum256(x)
}

type Option = func(*Sink)

// WithBlobSize sets the size of full blobs posted to the store.
// It is capped by the store's MaxSize.
func WithBlobSize(n int) Option {
	if n <= 0 {
		panic("blobsink: blob size must be > 0")
	}
	return func(s *Sink) {
		s.blobSize = n
	}
}

// WithCacheSize sets the number of recently posted blob IDs remembered for
// deduplication.
func WithCacheSize(n int) Option {
	return func(s *Sink) {
		s.cacheSize = n
	}
}

// Sink accumulates written bytes and posts them to a store in blobSize
// pieces, remembering the IDs in order.  The final piece, posted by Flush or
// Close, can be short.
//
// Sink is not safe for concurrent use.
type Sink struct {
	ctx   context.Context
	store Store

	blobSize  int
	cacheSize int
	cache     *lru.Cache

	buf []byte
	n   int
	ids []ID
}

func New(ctx context.Context, store Store, opts ...Option) *Sink {
	s := &Sink{
		ctx:   ctx,
		store: store,

		blobSize:  DefaultBlobSize,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if ms := store.MaxSize(); s.blobSize > ms {
		s.blobSize = ms
	}
	var err error
	if s.cache, err = lru.New(s.cacheSize); err != nil {
		panic(err)
	}
	s.buf = make([]byte, s.blobSize)
	return s
}

func (s *Sink) Write(data []byte) (int, error) {
	var n int
	for n < len(data) {
		c := copy(s.buf[s.n:], data[n:])
		s.n += c
		n += c
		if s.n == len(s.buf) {
			if err := s.emit(); err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

// Flush posts any accumulated bytes as a final, possibly short, blob.
func (s *Sink) Flush() error {
	return s.emit()
}

// Close flushes the sink.  The store is borrowed and is not closed.
func (s *Sink) Close() error {
	return s.Flush()
}

// Buffered returns the number of bytes not yet posted.
func (s *Sink) Buffered() int {
	return s.n
}

// IDs returns the IDs of all posted blobs in post order.
func (s *Sink) IDs() []ID {
	return s.ids
}

func (s *Sink) emit() error {
	if s.n == 0 {
		return nil
	}
	if err := s.post(s.buf[:s.n]); err != nil {
		return err
	}
	s.n = 0
	return nil
}

func (s *Sink) post(data []byte) error {
	id := Hash(data)
	if s.cache.Contains(id) {
		s.ids = append(s.ids, id)
		return nil
	}
	actual, err := s.store.Post(s.ctx, data)
	if err != nil {
		return err
	}
	if actual != id {
		return fmt.Errorf("blobsink: store hash mismatch HAVE: %v WANT: %v", actual, id)
	}
	s.cache.Add(id, struct{}{})
	s.ids = append(s.ids, id)
	return nil
}
