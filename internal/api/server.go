package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type shuttingDownKey struct{}

// Serve runs server until ctx is done and then shuts it down, waiting at most
// shutdownTimeout for open requests. Long-lived streams are told to finish
// as soon as shutdown starts.
func Serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, logger *zap.SugaredLogger) error {
	stopping := make(chan struct{})
	server.RegisterOnShutdown(func() { close(stopping) })

	base := context.WithValue(context.Background(), shuttingDownKey{}, (<-chan struct{})(stopping))
	server.BaseContext = func(net.Listener) context.Context { return base }

	errs := make(chan error, 1)

	go func() {
		logger.Infow("http server started", "addr", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("http server stopped")
	return nil
}

// shuttingDown is closed once the serving server starts shutting down. It is
// nil, and so never ready, for requests not served through Serve.
func shuttingDown(ctx context.Context) <-chan struct{} {
	stopping, _ := ctx.Value(shuttingDownKey{}).(<-chan struct{})
	return stopping
}
