package middlewares

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/exceptions"
	"servicerequest-service/internal/pkg/utils"
)

const bytesPerMegabyte = 1 << 20

// BodyBuffer reads the request body up to the configured limit, stores the
// raw bytes in the context and replaces the body so handlers can read it again.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit := m.bodyLimit(); limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrReadRequestBody(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_RAW_BODY, bodyBytes)
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) bodyLimit() int64 {
	if m.InternalConfig == nil {
		return 0
	}
	return int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * bytesPerMegabyte
}
