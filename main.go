package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pyama86/inquiry-relay/config"
	"github.com/pyama86/inquiry-relay/handler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := handler.NewHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer h.Close()

	if onLambda() {
		slog.Info("Starting lambda handler")
		lambda.StartWithOptions(h.HandleAPIGatewayProxy, lambda.WithContext(ctx))
		return nil
	}

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler.RequestLogger(h.Routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", slog.String("bind", cfg.Listen))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// Lambda の実行環境では AWS_LAMBDA_RUNTIME_API が設定される
func onLambda() bool {
	return os.Getenv("AWS_LAMBDA_RUNTIME_API") != ""
}
