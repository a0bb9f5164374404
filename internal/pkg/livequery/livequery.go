// Package livequery keeps the result of a query current. A subscription
// fetches once, then fetches again on every change notification and replaces
// the whole result. Results are never patched.
package livequery

import (
	"context"
	"sync/atomic"

	"github.com/xyz-asif/voiceup/internal/pkg/logger"
)

// Source turns writes to the named collections into notifications
type Source interface {
	Watch(ctx context.Context, collections ...string) (<-chan struct{}, error)
}

// FetchFunc runs the query
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Snapshot is one published query result
type Snapshot[T any] struct {
	Value   T
	Version uint64
}

// Subscription holds the latest result. Only the subscription's own loop
// writes the cell; everything else reads it.
type Subscription[T any] struct {
	cell    atomic.Pointer[Snapshot[T]]
	updates chan Snapshot[T]
	done    chan struct{}
}

// Subscribe starts watching collections and publishes fetch results until ctx
// ends or the source closes. Fetch failures are logged and the previous
// result stays in place.
func Subscribe[T any](ctx context.Context, source Source, fetch FetchFunc[T], collections ...string) (*Subscription[T], error) {
	changes, err := source.Watch(ctx, collections...)
	if err != nil {
		return nil, err
	}

	sub := &Subscription[T]{
		updates: make(chan Snapshot[T], 1),
		done:    make(chan struct{}),
	}
	go sub.run(ctx, changes, fetch)
	return sub, nil
}

func (s *Subscription[T]) run(ctx context.Context, changes <-chan struct{}, fetch FetchFunc[T]) {
	defer close(s.done)
	defer close(s.updates)

	var version uint64
	refresh := func() {
		value, err := fetch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn("live query fetch failed: %v", err)
			}
			return
		}
		version++
		s.publish(Snapshot[T]{Value: value, Version: version})
	}

	refresh()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			refresh()
		}
	}
}

// publish stores snap and offers it to the reader. An unread older snapshot
// is replaced, so a slow reader only ever sees the newest one.
func (s *Subscription[T]) publish(snap Snapshot[T]) {
	s.cell.Store(&snap)
	select {
	case s.updates <- snap:
		return
	default:
	}
	select {
	case <-s.updates:
	default:
	}
	s.updates <- snap
}

// Current returns the latest result, if one has been published
func (s *Subscription[T]) Current() (Snapshot[T], bool) {
	p := s.cell.Load()
	if p == nil {
		var zero Snapshot[T]
		return zero, false
	}
	return *p, true
}

// Updates delivers each new result. It is closed when the subscription ends.
func (s *Subscription[T]) Updates() <-chan Snapshot[T] {
	return s.updates
}

// Done is closed when the subscription has stopped
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}
