package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatch runs handler in a new goroutine and returns a channel that receives
// its result exactly once before being closed.
//
// The handler gets a background context carrying the caller's logger, so
// cancelling ctx does not cancel the handler. A panic is recovered, logged
// with its stack and delivered on the channel as an error.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan error {
	newCtx := newBackgroundContext(ctx)
	done := make(chan error, 1)

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				logger := ctxlog.From(newCtx)
				logger.Error("panic in async handler",
					"recover", r,
					"stack", string(stack))
				done <- goerr.New("panic in async handler", goerr.V("recover", r))
			}
		}()

		err := handler(newCtx)
		if err != nil {
			ctxlog.From(newCtx).Error("error in async handler", "error", err)
		}
		done <- err
	}()

	return done
}

// newBackgroundContext creates a new background context preserving the logger
func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
