package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

var loads singleflight.Group

type loaded[V any] struct {
	val V
	ttl time.Duration
}

// Loader computes a value on a cache miss along with how long to keep it.
type Loader[V any] func(ctx context.Context) (V, time.Duration, error)

// GetOrSet returns the cached value for key, or runs load on a miss.
// Concurrent misses for the same cache and key share a single load.
// Failed loads are not cached. A failed write to the cache is ignored:
// the freshly loaded value is still returned.
//
//	loc, err := cache.GetOrSet(ctx, c, "geo:"+ip, func(ctx context.Context) (geo.Location, time.Duration, error) {
//	    l, err := client.Lookup(ctx, ip)
//	    if err != nil {
//	        return geo.Location{}, 0, err
//	    }
//	    return *l, 24 * time.Hour, nil
//	})
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, load Loader[V]) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	// The group is shared by every cache; scope keys to this instance.
	flightKey := fmt.Sprintf("%p|%s", c, key)
	v, err, _ := loads.Do(flightKey, func() (any, error) {
		val, ttl, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return loaded[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r := v.(loaded[V])
	_ = c.Set(ctx, key, r.val, r.ttl)
	return r.val, nil
}
