package loader

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"vitrine/showcase/catalog"
	"vitrine/showcase/sched"
)

// SpawnFunc receives the fetched products, in response order, on the frame
// loop.
type SpawnFunc func(products []catalog.Product)

// Loader runs one fetch in the background and finishes it on the frame loop.
type Loader struct {
	client *Client
	sched  *sched.Scheduler
	log    *slog.Logger
	spawn  SpawnFunc

	started atomic.Bool
	done    atomic.Bool
	spawned int
	err     error
}

func New(c *Client, s *sched.Scheduler, log *slog.Logger, spawn SpawnFunc) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{client: c, sched: s, log: log, spawn: spawn}
}

// Start begins the fetch. Only the first call has an effect.
func (l *Loader) Start(ctx context.Context) {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	l.log.Info("fetch_started", "url", l.client.URL())
	go func() {
		body, err := l.client.fetch(ctx)
		finish := func() { l.finish(body, err) }
		for !l.sched.Post(finish) {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Millisecond):
			}
		}
	}()
}

func (l *Loader) finish(body []byte, err error) {
	defer l.done.Store(true)

	if err != nil {
		l.err = err
		l.log.Error("fetch_failed", "url", l.client.URL(), "err", err)
		return
	}
	l.log.Debug("products_body", "body", string(body))

	list, err := catalog.DecodeProductList(body)
	if err != nil {
		l.err = err
		l.log.Error("parse_failed", "err", err)
		return
	}
	if list.Products == nil {
		l.log.Warn("products_missing")
		return
	}
	if list.Len() == 0 {
		l.log.Warn("no_products")
		return
	}
	l.spawned = list.Len()
	if l.spawn != nil {
		l.spawn(list.Products)
	}
}

// Done reports whether the fetch has completed, successfully or not.
func (l *Loader) Done() bool { return l.done.Load() }

// Err returns the fetch or parse error once Done. It is only valid on the
// frame loop.
func (l *Loader) Err() error { return l.err }

// Count returns how many products were handed to the spawn function.
func (l *Loader) Count() int { return l.spawned }
