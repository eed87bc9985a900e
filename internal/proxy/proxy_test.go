package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testServer(t *testing.T, upstream http.HandlerFunc) (*Server, *httptest.Server) {
	t.Helper()
	up := httptest.NewServer(upstream)
	t.Cleanup(up.Close)

	s := NewServer(Config{
		APIKey:         "test-key",
		UpstreamURL:    up.URL,
		AllowedOrigins: []string{"https://watershed.example"},
	}, zap.NewNop())
	return s, up
}

const validBody = `{"model":"claude-sonnet-4-20250514","max_tokens":1024,"messages":[{"role":"user","content":"hi"}]}`

func TestRelay_MethodNotAllowed(t *testing.T) {
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.relay(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestRelay_MalformedBody(t *testing.T) {
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.relay(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRelay_MissingMessages(t *testing.T) {
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"model":"m","max_tokens":10}`))
	rec := httptest.NewRecorder()
	s.relay(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRelay_PassesThroughVerbatim(t *testing.T) {
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q, want test-key", got)
		}
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"content":[{"type":"text","text":"hello"}]}`)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	s.relay(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hello") {
		t.Errorf("body = %q, want upstream body relayed", rec.Body.String())
	}
}

func TestRelay_RelaysUpstreamErrorStatus(t *testing.T) {
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"type":"rate_limit_error"}}`)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	s.relay(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want upstream 429 relayed", rec.Code)
	}
}

func TestRelay_ClampsMaxTokensAndDefaultsModel(t *testing.T) {
	var forwarded relayRequest
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&forwarded)
		w.WriteHeader(http.StatusOK)
	})

	body := `{"max_tokens":999999,"messages":[{"role":"user","content":"hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.relay(rec, req)

	if forwarded.MaxTokens != DefaultMaxTokensCap {
		t.Errorf("max_tokens = %d, want clamped to %d", forwarded.MaxTokens, DefaultMaxTokensCap)
	}
	if forwarded.Model != DefaultModel {
		t.Errorf("model = %q, want default %q", forwarded.Model, DefaultModel)
	}
}

func TestRelay_RateLimitPerClient(t *testing.T) {
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < DefaultRateLimit; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
		req.Header.Set("X-Forwarded-For", "198.51.100.7")
		rec := httptest.NewRecorder()
		s.relay(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	rec := httptest.NewRecorder()
	s.relay(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 over the window limit", rec.Code)
	}

	// A different client is unaffected.
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec = httptest.NewRecorder()
	s.relay(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("other client: status = %d, want 200", rec.Code)
	}
}

func TestSlidingWindow_Expires(t *testing.T) {
	sw := newSlidingWindow(2, time.Minute)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sw.now = func() time.Time { return base }

	if !sw.Allow("c") || !sw.Allow("c") {
		t.Fatal("first two requests should pass")
	}
	if sw.Allow("c") {
		t.Fatal("third request inside the window should fail")
	}

	sw.now = func() time.Time { return base.Add(61 * time.Second) }
	if !sw.Allow("c") {
		t.Fatal("request after the window expires should pass")
	}
}

func TestHandler_CORSPreflightAllowedOrigin(t *testing.T) {
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {})
	h := s.Handler()

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://watershed.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://watershed.example" {
		t.Errorf("allow-origin = %q, want the allow-listed origin", got)
	}
}

func TestHandler_CORSDisallowedOrigin(t *testing.T) {
	s, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {})
	h := s.Handler()

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin = %q, want empty for disallowed origin", got)
	}
}
