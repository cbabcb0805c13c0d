package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestOpenInstanceAllowsUnauthenticated(t *testing.T) {
	h := AuthenticateRequestMiddleware(SecConfig{})(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/post", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("open instance: expected 200, got %d", rec.Code)
	}
}

func TestKeyedInstanceRequiresKey(t *testing.T) {
	cfg := SecConfig{BackendKeys: map[string]struct{}{"backend-key": {}}}
	h := AuthenticateRequestMiddleware(cfg)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post/1", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no key: expected 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post/1", nil)
	req.Header.Set("Authorization", "Bearer backend-key")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("bearer key: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/post/1", nil)
	req.Header.Set("X-API-Key", "backend-key")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("x-api-key: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/post/1", nil)
	req.Header.Set("X-API-Key", "unknown")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown key: expected 401, got %d", rec.Code)
	}

	// health probes bypass authentication
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}
}

func TestIPWhitelist(t *testing.T) {
	cfg := SecConfig{IPWhitelist: []string{"10.1.2.3"}}
	h := AuthenticateRequestMiddleware(cfg)(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post/1", nil)
	req.RemoteAddr = "10.1.2.3:55555"
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("whitelisted ip: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/post/1", nil)
	req.RemoteAddr = "10.9.9.9:55555"
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign ip: expected 403, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := SecConfig{AllowedOrigins: []string{"https://app.example.com"}}
	h := AuthenticateRequestMiddleware(cfg)(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/post", nil)
	req.Header.Set("Origin", "https://app.example.com")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight: expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("missing allow-origin header, got %q", got)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/post/1", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin should get no allow-origin header, got %q", got)
	}
}

func TestRateLimitPerCaller(t *testing.T) {
	cfg := SecConfig{RPS: 1, Burst: 1}
	h := AuthenticateRequestMiddleware(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/post/1", nil)
	req.RemoteAddr = "10.0.0.1:1000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}

	// a different caller has its own budget
	other := httptest.NewRequest(http.MethodGet, "/post/1", nil)
	other.RemoteAddr = "10.0.0.2:1000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	if rec.Code != http.StatusOK {
		t.Fatalf("other caller: expected 200, got %d", rec.Code)
	}
}
