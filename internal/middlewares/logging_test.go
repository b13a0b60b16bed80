package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
		expectedBody   string
		expectResponse string
	}{
		{
			name:           "OK response",
			path:           "/",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
			expectedBody:   "hello",
		},
		{
			name:           "Internal server error",
			path:           "/",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    "error",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "error",
		},
		{
			name:           "api response body is logged",
			path:           "/api/consultation",
			handlerStatus:  http.StatusOK,
			handlerBody:    `{"message":"ok"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"ok"}`,
			expectResponse: `{"message":"ok"}`,
		},
		{
			name:           "long api response is truncated",
			path:           "/api/consultation",
			handlerStatus:  http.StatusOK,
			handlerBody:    strings.Repeat("x", 200),
			expectedStatus: http.StatusOK,
			expectedBody:   strings.Repeat("x", 200),
			expectResponse: strings.Repeat("x", 79) + "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, logs := newObservedLogger()

			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(log)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.expectedBody, string(bodyBytes))

			reqID := rr.Header().Get("X-Request-ID")
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, seenID)

			entries := logs.FilterMessage("request").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, tt.path, fields["uri"])
			assert.EqualValues(t, tt.expectedStatus, fields["status"])

			if tt.expectResponse == "" {
				assert.NotContains(t, fields, "response")
			} else {
				assert.Equal(t, tt.expectResponse, fields["response"])
			}
		})
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
