package content

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// QueryKey identifies the project query. The query takes no parameters, so
// a single key covers every request.
const QueryKey = "portfolio-content"

const tracerName = "portfolio/site/internal/content"

// Query caches the result of reading all projects from a Source.
//
// At most one read is outstanding at a time; callers arriving while a read is
// in flight wait for that read instead of starting another. Successful results
// are cached until the TTL passes or Invalidate is called. Failures are never
// cached and never retried.
type Query struct {
	source Source
	ttl    time.Duration
	now    func() time.Time
	tracer trace.Tracer
	group  singleflight.Group

	mu         sync.Mutex
	entry      *cacheEntry
	generation uint64
}

type cacheEntry struct {
	state     State
	expiresAt time.Time
	stale     bool
}

// Option configures a Query.
type Option func(*Query)

// WithClock overrides the time source used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(q *Query) {
		q.now = now
	}
}

// NewQuery creates a Query over source. A ttl of zero keeps results until
// they are invalidated.
func NewQuery(source Source, ttl time.Duration, opts ...Option) *Query {
	q := &Query{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Peek returns the cached success state when it is still fresh, and a pending
// state otherwise. It never touches the source.
func (q *Query) Peek() State {
	if state, _, ok := q.fresh(); ok {
		return state
	}
	return Pending()
}

// Fetch returns the cached projects when fresh, otherwise reads them from the
// source. If ctx ends before the read completes, Fetch returns a pending state
// and the read's result is kept for the next caller.
//
// A read that began before the latest Invalidate is awaited and then followed
// by a new read, so invalidation never starts a second concurrent read.
func (q *Query) Fetch(ctx context.Context) State {
	state, generation, ok := q.fresh()
	if ok {
		return state
	}

	for {
		ch := q.group.DoChan(QueryKey, func() (any, error) {
			return q.load(context.WithoutCancel(ctx))
		})

		select {
		case <-ctx.Done():
			return Pending()
		case res := <-ch:
			if res.Err != nil {
				return Failed(res.Err)
			}
			result := res.Val.(loadResult)
			if result.generation < generation {
				continue
			}
			return result.state
		}
	}
}

// Invalidate marks the cached result stale. The next Fetch reads the source
// again, and a read already in flight will not be cached.
func (q *Query) Invalidate() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.generation++
	if q.entry != nil {
		q.entry.stale = true
	}
}

// fresh reports the cached state if it may be served, along with the current
// generation.
func (q *Query) fresh() (State, uint64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.entry == nil || q.entry.stale {
		return State{}, q.generation, false
	}
	if !q.entry.expiresAt.IsZero() && !q.now().Before(q.entry.expiresAt) {
		return State{}, q.generation, false
	}
	return q.entry.state, q.generation, true
}

type loadResult struct {
	state      State
	generation uint64
}

func (q *Query) load(ctx context.Context) (loadResult, error) {
	q.mu.Lock()
	generation := q.generation
	q.mu.Unlock()

	ctx, span := q.tracer.Start(ctx, "content.FetchProjects",
		trace.WithAttributes(attribute.String("content.query", QueryKey)))
	defer span.End()

	projects, err := q.source.ListProjects(ctx)
	if err != nil {
		if !errors.Is(err, ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return loadResult{}, err
	}
	span.SetAttributes(attribute.Int("content.rows", len(projects)))

	now := q.now()
	state := Succeeded(projects, now)
	entry := &cacheEntry{state: state}
	if q.ttl > 0 {
		entry.expiresAt = now.Add(q.ttl)
	}

	q.mu.Lock()
	if generation == q.generation {
		q.entry = entry
	}
	q.mu.Unlock()

	return loadResult{state: state, generation: generation}, nil
}
