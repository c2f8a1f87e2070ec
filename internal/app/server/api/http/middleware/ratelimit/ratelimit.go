package ratelimit

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

// Limiter applies one token bucket to the whole API surface.
type Limiter struct {
	limiter *rate.Limiter
	log     *slog.Logger
}

func New(rps rate.Limit, burst int, log *slog.Logger) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rps, burst),
		log:     log.With(slog.String("component", "rate_limiter")),
	}
}

func (l *Limiter) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !l.limiter.Allow() {
			l.log.Warn("request rejected by rate limiter", "path", ctx.URL().Path)
			ctx.SetStatus(http.StatusTooManyRequests)
			ctx.SetHeader("Content-Type", "application/json")
			if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"detail": "The API is at capacity, try again later.",
			}); err != nil {
				l.log.Error("encode 429 body", "error", err)
			}
			return
		}
		next(ctx)
	}
}
