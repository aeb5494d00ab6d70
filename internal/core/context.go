package core

import (
	"context"
	"time"
)

// DefaultWriteTimeout bounds a single store write once it is detached from the
// request.
const DefaultWriteTimeout = 10 * time.Second

// writeContext detaches ctx from its caller's cancellation so a client that
// disconnects mid-request does not abandon an in-flight write. Values such as
// the request id are kept. The write is still bounded by timeout.
func writeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}
