package redis

import (
	"context"
	"io"
)

// Shutdown closes the client; register it as a run shutdown hook:
//
//	app.Run(addr, folio.ShutdownHook(redis.Shutdown(client)))
func Shutdown(client io.Closer) func(ctx context.Context) error {
	return func(context.Context) error {
		if client == nil {
			return nil
		}
		return client.Close()
	}
}
