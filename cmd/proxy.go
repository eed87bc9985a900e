package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kevinkeet/watershed/internal/proxy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Run the browser-to-backend relay server",
	Long: `Serve the edge relay that browser clients call instead of the model
API directly. The relay enforces CORS, rate-limits per client IP, clamps
max_tokens, and never exposes the API key to the browser.`,
	RunE: runProxy,
}

func init() {
	proxyCmd.Flags().String("addr", ":8787", "Listen address")
	proxyCmd.Flags().StringSlice("origin", nil, "Allowed CORS origin (repeatable)")
	proxyCmd.Flags().String("upstream", "", "Override the upstream messages endpoint")
	proxyCmd.Flags().Int("rate-limit", proxy.DefaultRateLimit, "Requests allowed per client per window")
}

func runProxy(cmd *cobra.Command, args []string) error {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}

	addr, _ := cmd.Flags().GetString("addr")
	if !cmd.Flags().Changed("addr") {
		if env := os.Getenv("WATERSHED_PROXY_ADDR"); env != "" {
			addr = env
		}
	}
	origins, _ := cmd.Flags().GetStringSlice("origin")
	if len(origins) == 0 {
		if env := os.Getenv("WATERSHED_ALLOWED_ORIGINS"); env != "" {
			origins = strings.Split(env, ",")
		}
	}
	upstream, _ := cmd.Flags().GetString("upstream")
	rateLimit, _ := cmd.Flags().GetInt("rate-limit")

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	server := proxy.NewServer(proxy.Config{
		APIKey:         apiKey,
		UpstreamURL:    upstream,
		AllowedOrigins: origins,
		RateLimit:      rateLimit,
	}, log)

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("relay listening", zap.String("addr", addr), zap.Strings("origins", origins))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
