package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rupam1998/clarity-ai-app/internal/config"
	"github.com/rupam1998/clarity-ai-app/internal/engine"
	"github.com/rupam1998/clarity-ai-app/internal/httpx"
	"github.com/rupam1998/clarity-ai-app/internal/insight"
	"github.com/rupam1998/clarity-ai-app/internal/store"
	"github.com/rupam1998/clarity-ai-app/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var gen insight.Generator = insight.Template{}
	if cfg.GeminiAPIKey != "" {
		g, err := insight.NewGemini(cmd.Context(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini unavailable, falling back to template insights", slog.String("err", err.Error()))
		} else {
			defer g.Close()
			gen = g
		}
	}

	eng := engine.New(cfg.Thresholds, logger, gen)
	reports := store.NewReportStore(cfg.ReportCap)
	metrics := utils.NewHTTPMetrics(prometheus.DefaultRegisterer)

	r := httpx.NewRouter(logger, eng, reports, metrics)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
