package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/atelierhq/agency_cms/pkg/lock"
)

// WriteLock returns a middleware that serializes content mutations through a
// Redis-backed distributed lock. With a nil lock (Redis disabled) requests
// pass through without any locking overhead.
func WriteLock(l *lock.DistributedLock) app.HandlerFunc {
	if l == nil {
		return func(ctx context.Context, c *app.RequestContext) {
			c.Next(ctx)
		}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		lockID, err := l.Acquire(ctx)
		if err != nil {
			hlog.CtxErrorf(ctx, "acquire write lock: %v", err)
			c.JSON(consts.StatusServiceUnavailable, utils.H{"error": "service busy, please retry later"})
			c.Abort()
			return
		}
		defer func() {
			if err := l.Release(ctx, lockID); err != nil {
				hlog.CtxErrorf(ctx, "release write lock: %v", err)
			}
		}()

		c.Next(ctx)
	}
}
