package middleware

import (
	"context"
	"log/slog"
	"time"

	"autorent/internal/app/commands"
	"autorent/internal/app/queries"
)

// Logging records every dispatched command with its outcome and duration.
func Logging(logger *slog.Logger) CommandMiddleware {
	return func(next commands.Bus) commands.Bus {
		nextFn := wrapCommand(next)
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			start := time.Now()
			res, err := nextFn(ctx, cmd)
			if logger != nil {
				if err != nil {
					logger.Warn("command failed", "key", cmd.Key(), "duration", time.Since(start), "error", err)
				} else {
					logger.Info("command handled", "key", cmd.Key(), "duration", time.Since(start))
				}
			}
			return res, err
		})
	}
}

// QueryLogging mirrors Logging for the query bus.
func QueryLogging(logger *slog.Logger) QueryMiddleware {
	return func(next queries.Bus) queries.Bus {
		nextFn := wrapQuery(next)
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			start := time.Now()
			res, err := nextFn(ctx, q)
			if logger != nil {
				if err != nil {
					logger.Warn("query failed", "key", q.Key(), "duration", time.Since(start), "error", err)
				} else {
					logger.Info("query handled", "key", q.Key(), "duration", time.Since(start))
				}
			}
			return res, err
		})
	}
}
