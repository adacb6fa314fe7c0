package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/collabzy/collabzy-go/internal/cachekey"
)

// DefaultTTL is how long a stored snapshot is served before the next fetch
// goes back to the gateway.
const DefaultTTL = 5 * time.Minute

// Coordinator is the cache-aside layer in front of the gateway. It serves
// the freshest acceptable snapshot per resource kind and filter set, and
// re-fetches on expiry, force refresh, or after invalidation.
type Coordinator struct {
	gateway Gateway
	store   CacheStore
	session Session
	logger  *zap.Logger
	metrics MetricsRecorder
	clock   Clock
	ttl     time.Duration
	group   singleflight.Group
}

// NewCoordinator creates a new coordinator. A zero ttl falls back to
// DefaultTTL; a nil metrics recorder disables reporting.
func NewCoordinator(
	gateway Gateway,
	store CacheStore,
	session Session,
	logger *zap.Logger,
	metrics MetricsRecorder,
	clock Clock,
	ttl time.Duration,
) *Coordinator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = NewClock()
	}
	return &Coordinator{
		gateway: gateway,
		store:   store,
		session: session,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
		ttl:     ttl,
	}
}

// FetchInfluencers returns influencer profiles, served from cache when fresh.
func (c *Coordinator) FetchInfluencers(ctx context.Context, filters Filters, forceRefresh bool) ([]Influencer, error) {
	return fetchKind(ctx, c, KindInfluencers, filters, forceRefresh, func(ctx context.Context) ([]Influencer, error) {
		return c.gateway.FetchInfluencers(ctx, filters)
	})
}

// FetchCampaigns returns campaign listings, served from cache when fresh.
func (c *Coordinator) FetchCampaigns(ctx context.Context, filters Filters, forceRefresh bool) ([]Campaign, error) {
	return fetchKind(ctx, c, KindCampaigns, filters, forceRefresh, func(ctx context.Context) ([]Campaign, error) {
		return c.gateway.FetchCampaigns(ctx, filters)
	})
}

// FetchMyApplications returns the caller's applications.
func (c *Coordinator) FetchMyApplications(ctx context.Context, filters Filters, forceRefresh bool) ([]Application, error) {
	return fetchKind(ctx, c, KindApplications, filters, forceRefresh, func(ctx context.Context) ([]Application, error) {
		return c.gateway.FetchApplications(ctx, filters)
	})
}

// FetchMyDeals returns the caller's deals.
func (c *Coordinator) FetchMyDeals(ctx context.Context, filters Filters, forceRefresh bool) ([]Deal, error) {
	return fetchKind(ctx, c, KindDeals, filters, forceRefresh, func(ctx context.Context) ([]Deal, error) {
		return c.gateway.FetchDeals(ctx, filters)
	})
}

// FetchCollaborations returns the caller's collaboration threads.
func (c *Coordinator) FetchCollaborations(ctx context.Context, filters Filters, forceRefresh bool) ([]Conversation, error) {
	return fetchKind(ctx, c, KindConversations, filters, forceRefresh, func(ctx context.Context) ([]Conversation, error) {
		return c.gateway.FetchConversations(ctx, filters)
	})
}

// Invalidate clears every stored snapshot for kind. Passing KindAll clears
// the whole store. Invalidation never triggers a re-fetch; the next fetch
// misses and repopulates. Idempotent.
func (c *Coordinator) Invalidate(kind ResourceKind) {
	if kind == KindAll {
		c.ClearAll()
		return
	}
	if !kind.Valid() {
		panic(fmt.Sprintf("core: invalidate called with unknown resource kind %q", kind))
	}
	c.store.DeleteKind(kind)
	c.reportInvalidation(kind)
	c.logger.Debug("Invalidated cached snapshots", zap.String("kind", string(kind)))
}

// ClearAll drops every stored snapshot. Used on session teardown.
func (c *Coordinator) ClearAll() {
	c.store.Clear()
	for _, kind := range Kinds() {
		c.reportInvalidation(kind)
	}
	c.logger.Debug("Cleared all cached snapshots")
}

// fetchKind is the cache-aside path shared by every typed fetch wrapper.
//
// Gated kinds short-circuit to an empty result for unauthenticated sessions,
// touching neither the store nor the network. A fresh entry is served as a
// snapshot copy. Everything else goes through a per-key singleflight group so
// concurrent callers share one gateway call. A failed gateway call leaves any
// previous entry untouched and returns an empty slice alongside the error.
func fetchKind[T any](
	ctx context.Context,
	c *Coordinator,
	kind ResourceKind,
	filters Filters,
	forceRefresh bool,
	load func(ctx context.Context) ([]T, error),
) ([]T, error) {
	if !kind.Valid() {
		panic(fmt.Sprintf("core: fetch called with unknown resource kind %q", kind))
	}

	if kind.Gated() {
		if _, ok := c.session.Token(); !ok {
			c.logger.Debug("Skipping fetch for unauthenticated session", zap.String("kind", string(kind)))
			return []T{}, nil
		}
	}

	key := cachekey.Key(string(kind), filters)

	if !forceRefresh {
		if entry, ok := c.store.Get(key); ok && c.clock.Now().Sub(entry.FetchedAt) < c.ttl {
			if data, ok := entry.Data.([]T); ok {
				c.reportHit(kind)
				c.logger.Debug("Cache hit", zap.String("kind", string(kind)), zap.String("key", key))
				return snapshot(data), nil
			}
		}
	}
	c.reportMiss(kind)

	v, err, shared := c.group.Do(key, func() (any, error) {
		data, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store.Set(key, CacheEntry{Data: data, FetchedAt: c.clock.Now()})
		c.reportRefresh(kind)
		return data, nil
	})
	if err != nil {
		c.reportGatewayError(kind)
		c.logger.Warn("Gateway fetch failed, returning empty result",
			zap.String("kind", string(kind)),
			zap.Error(err))
		return []T{}, err
	}
	if shared {
		c.logger.Debug("Fetch coalesced with in-flight request", zap.String("key", key))
	}

	data, ok := v.([]T)
	if !ok {
		panic(fmt.Sprintf("core: cached payload for kind %q has unexpected type", kind))
	}
	return snapshot(data), nil
}

// snapshot copies the slice header so callers cannot reorder or truncate the
// stored payload.
func snapshot[T any](data []T) []T {
	out := make([]T, len(data))
	copy(out, data)
	return out
}

func (c *Coordinator) reportHit(kind ResourceKind) {
	if c.metrics == nil {
		return
	}
	c.metrics.CacheHit(kind)
}

func (c *Coordinator) reportMiss(kind ResourceKind) {
	if c.metrics == nil {
		return
	}
	c.metrics.CacheMiss(kind)
}

func (c *Coordinator) reportRefresh(kind ResourceKind) {
	if c.metrics == nil {
		return
	}
	c.metrics.Refresh(kind)
}

func (c *Coordinator) reportInvalidation(kind ResourceKind) {
	if c.metrics == nil {
		return
	}
	c.metrics.Invalidation(kind)
}

func (c *Coordinator) reportGatewayError(kind ResourceKind) {
	if c.metrics == nil {
		return
	}
	c.metrics.GatewayError(kind)
}
