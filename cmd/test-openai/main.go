package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/troikatech/chat-probe/internal/probe"
	"github.com/troikatech/chat-probe/pkg/chat"
	"github.com/troikatech/chat-probe/pkg/env"
	"github.com/troikatech/chat-probe/pkg/logger"
	"github.com/troikatech/chat-probe/pkg/otel"
)

func main() {
	envFile := flag.String("env", ".env", "path to the environment file")
	flag.Parse()

	if err := run(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "❌ FAILED: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	cfg, err := env.Load(envFile)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel, cfg.AppEnv); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	if cfg.OTELEnabled {
		shutdown, err := otel.InitTracing(ctx, "chat-probe", "1.0.0", cfg.OTELEndpoint)
		if err != nil {
			logger.Log.Warn("Failed to initialize OpenTelemetry", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.Warn("Failed to flush traces", zap.Error(err))
				}
			}()
			logger.Log.Info("OpenTelemetry tracing enabled", zap.String("endpoint", cfg.OTELEndpoint))
		}
	}

	client := chat.NewClient(cfg.OpenAIApiKey, chat.DefaultEndpoint, nil, logger.Log)
	runner := probe.NewRunner(cfg, client, os.Stdout, logger.Log)

	return runner.Run(ctx)
}
