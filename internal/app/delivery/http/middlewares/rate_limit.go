package middlewares

import (
	"net/http"
	"time"

	"servicerequest-service/internal/pkg/exceptions"
	"servicerequest-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to MaxRequests per window. A non-positive
// MaxRequests disables limiting.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	window := time.Second
	if seconds := m.InternalConfig.App.MaxTimeRequestsPerSeconds; seconds > 0 {
		window = time.Duration(seconds) * time.Second
	}

	return httprate.Limit(
		maxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
