package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/cache"
	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/httputil"
)

// retryBaseDelay is the initial backoff for --retries; it doubles per attempt.
const retryBaseDelay = time.Second

// withRetry runs fn, retrying NETWORK_ERROR failures when --retries is set.
// Other error codes fail immediately; the transport itself never retries.
func (c *CLI) withRetry(ctx context.Context, fn func() error) error {
	if c.retries <= 0 {
		return fn()
	}
	return httputil.Retry(ctx, c.retries+1, c.retryDelay, func() error {
		err := fn()
		if apperrors.Is(err, apperrors.ErrCodeNetwork) {
			c.Logger.Debug("transient failure, will retry", "err", err)
			return httputil.Retryable(err)
		}
		return err
	})
}

// fetchCached runs fetch through the result cache: a hit decodes the cached
// JSON, a miss fetches (with retry) and stores the encoded result. Cache
// failures degrade to a fresh fetch and are never surfaced. The returned
// bool reports whether the value came from the cache.
func fetchCached[T any](ctx context.Context, c *CLI, rc cache.Cache, key, desc string, fetch func(context.Context) (T, error)) (T, bool, error) {
	if data, ok, err := rc.Get(ctx, key); err == nil && ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, true, nil
		}
	} else if err != nil {
		c.Logger.Debug("cache read failed", "key", key, "err", err)
	}

	prog := newProgress(c.Logger)
	var result T
	err := c.withRetry(ctx, func() error {
		v, err := fetch(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	prog.done(desc)

	if data, err := json.Marshal(result); err == nil {
		if err := rc.Set(ctx, key, data, c.cfg.Cache.TTL.Duration()); err != nil {
			c.Logger.Debug("cache write failed", "key", key, "err", err)
		}
	}
	return result, false, nil
}
