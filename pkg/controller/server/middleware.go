package server

import (
	"context"
	"net/http"
	"time"

	"log/slog"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/utils/logging"
	"github.com/google/uuid"
)

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.Default().With(slog.String("request_id", uuid.NewString()))

		ctx := logging.With(r.Context(), logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

type ctxSessionKey struct{}

// withSession resolves the session cookie once per request. An absent or
// invalid cookie leaves the session nil; handlers that require auth get a 401
// from the usecase layer.
func withSession(sessions *sessionCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessions.parse(r)
			if err != nil {
				logging.From(r.Context()).Warn("discarding invalid session cookie",
					slog.Any("error", err),
				)
				sessions.clear(w)
			}

			if sess != nil {
				ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func sessionFrom(r *http.Request) *model.Session {
	if sess, ok := r.Context().Value(ctxSessionKey{}).(*model.Session); ok {
		return sess
	}
	return nil
}
