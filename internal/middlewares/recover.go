package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/ive-had-worse/internal/logger"
)

// RecoverMiddleware turns a panic into a 400 invalid_request response.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context()).Errorw("panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				writeError(w, http.StatusBadRequest, codeInvalidRequest)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
