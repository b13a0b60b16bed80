package middlewares

import (
	"errors"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

const internalErrorBody = `{"message":"Internal server error"}` + "\n"

type committer interface {
	Committed() bool
}

// RecoverMiddleware turns panics in downstream handlers into a JSON 500 response.
// Nothing is written when the response has already been committed.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func RecoverMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw, ok := w.(committer)
			if !ok {
				tw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
				w, cw = tw, tw
			}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.Errorw("panic recovered",
					"request_id", RequestIDFromContext(r.Context()),
					"method", r.Method,
					"uri", r.RequestURI,
					"panic", rec,
					"stack", string(debug.Stack()),
				)

				if cw.Committed() {
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(internalErrorBody))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
