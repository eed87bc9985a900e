// Package proxy implements the edge relay between browser clients and
// the model backend: CORS enforcement, per-IP rate limiting, max_tokens
// clamping, and verbatim response passthrough. It carries no session or
// scoring state.
package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Defaults mirroring the deployed relay configuration.
const (
	DefaultModel        = "claude-sonnet-4-20250514"
	DefaultMaxTokensCap = 4096
	DefaultRateLimit    = 15
	DefaultRateWindow   = 60 * time.Second
	defaultUpstreamURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion    = "2023-06-01"
)

// Config holds relay settings.
type Config struct {
	APIKey         string
	UpstreamURL    string   // defaults to the Anthropic messages endpoint
	AllowedOrigins []string // CORS allow-list; empty allows none
	MaxTokensCap   int
	RateLimit      int
	RateWindow     time.Duration
}

// relayRequest is the accepted request body. Unknown fields are dropped;
// the forwarded body is rebuilt from these fields only.
type relayRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  json.RawMessage `json:"messages"`
}

// Server is the relay handler.
type Server struct {
	cfg     Config
	limiter *slidingWindow
	client  *http.Client
	log     *zap.Logger
}

// NewServer creates a relay server.
func NewServer(cfg Config, log *zap.Logger) *Server {
	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = defaultUpstreamURL
	}
	if cfg.MaxTokensCap == 0 {
		cfg.MaxTokensCap = DefaultMaxTokensCap
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.RateWindow == 0 {
		cfg.RateWindow = DefaultRateWindow
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:     cfg,
		limiter: newSlidingWindow(cfg.RateLimit, cfg.RateWindow),
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}
}

// Handler returns the full handler chain: CORS wrapping the relay.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	})
	return c.Handler(http.HandlerFunc(s.relay))
}

func (s *Server) relay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	client := clientIP(r)
	if !s.limiter.Allow(client) {
		s.log.Warn("rate limit exceeded", zap.String("client", client))
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	var req relayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		http.Error(w, "messages is required", http.StatusBadRequest)
		return
	}

	if req.Model == "" {
		req.Model = DefaultModel
	}
	if req.MaxTokens <= 0 || req.MaxTokens > s.cfg.MaxTokensCap {
		req.MaxTokens = s.cfg.MaxTokensCap
	}

	body, err := json.Marshal(req)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	upstream, err := http.NewRequestWithContext(r.Context(), http.MethodPost, s.cfg.UpstreamURL, bytes.NewReader(body))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	upstream.Header.Set("Content-Type", "application/json")
	upstream.Header.Set("x-api-key", s.cfg.APIKey)
	upstream.Header.Set("anthropic-version", anthropicVersion)

	start := time.Now()
	resp, err := s.client.Do(upstream)
	if err != nil {
		s.log.Error("upstream request failed", zap.Error(err))
		http.Error(w, "upstream request failed", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	s.log.Info("relayed request",
		zap.String("client", client),
		zap.String("model", req.Model),
		zap.Int("max_tokens", req.MaxTokens),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	// Relay the backend's body and status verbatim.
	w.Header().Set("Content-Type", resp.Header.Get("Content-Type"))
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		s.log.Error("copying upstream response", zap.Error(err))
	}
}

// clientIP extracts the caller's address, honoring the forwarding header
// set by the edge in front of this process.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
