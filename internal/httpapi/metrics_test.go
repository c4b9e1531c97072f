package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"llmboard/pkg/types"
)

func TestMetricsMiddleware_CountsByStatus(t *testing.T) {
	h := NewMux(&mockService{models: []types.Model{{ID: "m1"}}})
	ok := httpRequestsTotal.WithLabelValues("/api/models/{id}", http.MethodGet, "200")
	missing := httpRequestsTotal.WithLabelValues("/api/models/{id}", http.MethodGet, "404")
	okBefore, missingBefore := testutil.ToFloat64(ok), testutil.ToFloat64(missing)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/models/m1", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/models/m2", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/models/m3", nil))

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Fatalf("expected one 200, got %v", got)
	}
	if got := testutil.ToFloat64(missing) - missingBefore; got != 2 {
		t.Fatalf("expected two 404s, got %v", got)
	}
}

func TestMetricsMiddleware_ResponseBytes(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	before := testutil.CollectAndCount(httpResponseBytes)
	MetricsMiddleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))
	if after := testutil.CollectAndCount(httpResponseBytes); after < before || after == 0 {
		t.Fatalf("response size histogram not observed: before=%d after=%d", before, after)
	}
}
