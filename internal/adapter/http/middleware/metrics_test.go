package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/gobalance/internal/infrastructure/metrics"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	m := metrics.New()
	mw := NewMetricsMiddleware(m)

	testCases := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{
			name:       "report endpoint",
			method:     http.MethodPost,
			path:       "/api/v1/trial-balance",
			statusCode: http.StatusOK,
		},
		{
			name:       "health endpoint",
			method:     http.MethodGet,
			path:       "/health",
			statusCode: http.StatusTeapot,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m.HTTPRequests.Reset()
			m.HTTPDuration.Reset()

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			mw.Wrap(next).ServeHTTP(rr, req)

			if !handlerCalled {
				t.Fatalf("next handler was not invoked")
			}

			counter := m.HTTPRequests.WithLabelValues(tc.method, tc.path, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected counter to be 1, got %v", got)
			}
		})
	}
}
