// Package store holds the client-side state containers of the storefront
// and admin console. Each container is created by its constructor, guarded
// by a mutex and ends with Close; there is no package-level state.
package store

import (
	"context"
	"sync"
)

// scope is the lifetime of a container. Close cancels every request the
// container started, and late responses are dropped by comparing
// generations.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	gen uint64
}

func newScope() *scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &scope{ctx: ctx, cancel: cancel}
}

// begin starts a request bound to both the caller's ctx and the container's
// lifetime, and returns the generation it belongs to.
func (s *scope) begin(ctx context.Context) (context.Context, context.CancelFunc, uint64) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	reqCtx, done := s.bind(ctx)
	return reqCtx, done, gen
}

// bind ties a request to ctx and the container's lifetime without starting
// a new generation. Used by writes whose answer does not replace the list.
func (s *scope) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	reqCtx, cancel := context.WithCancel(s.ctx)
	stop := context.AfterFunc(ctx, cancel)
	return reqCtx, func() {
		stop()
		cancel()
	}
}

// current reports whether gen is still the latest request and the
// container is open.
func (s *scope) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen == gen && s.ctx.Err() == nil
}

// invalidate makes every in-flight response stale.
func (s *scope) invalidate() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

func (s *scope) close() {
	s.invalidate()
	s.cancel()
}

func (s *scope) closed() bool {
	return s.ctx.Err() != nil
}
