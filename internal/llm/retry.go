package llm

import (
	"context"
	"time"

	"recap/internal/logger"
)

// generateWithRetry calls the client once per entry in the timeout
// schedule, each attempt bounded by its own deadline. Failures and
// timeouts are logged, never returned: when the schedule is exhausted the
// fallback is returned.
func generateWithRetry(ctx context.Context, log logger.Logger, client Client, req Request, timeouts []time.Duration, fallback string) string {
	attempts := len(timeouts)

	for i, timeout := range timeouts {
		if ctx.Err() != nil {
			log.Warn(ctx, "Aborting %s call: %v", client.Name(), ctx.Err())
			return fallback
		}

		log.Debug(ctx, "Attempt %d/%d: %s with %s timeout", i+1, attempts, req.Model, timeout)

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		text, err := client.Complete(attemptCtx, req)
		cancel()

		if err == nil {
			log.Debug(ctx, "Completed %s call on attempt %d", req.Model, i+1)
			return text
		}

		log.Warn(ctx, "Attempt %d/%d with %s failed: %v", i+1, attempts, req.Model, err)
	}

	log.Warn(ctx, "All %d attempts with %s failed, using fallback", attempts, req.Model)
	return fallback
}
