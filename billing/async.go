package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// runAsync is an indirection over safeAsync so tests can run background
// operations synchronously.
var runAsync = safeAsync

// safeAsync runs fn in a goroutine with a timeout and structured error
// logging, so fire-and-forget work (workflow signals) cannot fail silently.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
			return
		}
		rlog.Debug("async operation completed", "op", op)
	}()
}
