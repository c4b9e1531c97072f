package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
)

// baseCtx is canceled when the process starts shutting down.
var baseCtx atomic.Pointer[context.Context]

// SetBaseContext sets the process-level context that bounds work started by
// handlers. A nil ctx restores context.Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		baseCtx.Store(nil)
		return
	}
	baseCtx.Store(&ctx)
}

func serverContext() context.Context {
	if p := baseCtx.Load(); p != nil {
		return *p
	}
	return context.Background()
}

// requestContext derives a context from the request that is also canceled
// on shutdown. The returned cancel func must be called when the handler ends.
func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(r.Context())
	stop := context.AfterFunc(serverContext(), cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// aborted reports whether the client went away or the server is stopping.
func aborted(r *http.Request) bool {
	return r.Context().Err() != nil || serverContext().Err() != nil
}
