package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"agenda_rastreadores/internal/config"
	"agenda_rastreadores/pkg/log"
)

func runServe(ctx context.Context, opts *config.Options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, closer, err := openStore(ctx, opts)
	if err != nil {
		log.Error(err, "failed to open store", "driver", opts.StoreDriver)
		return err
	}
	defer func() { _ = closer.Close() }()

	idp, err := newIdentityProvider(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.HTTPAddr,
		Handler:           newRouter(opts, s, idp),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", opts.HTTPAddr, "store", opts.StoreDriver, "auth", opts.AuthProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server", "timeout", opts.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(err, "http server stopped with error")
		return err
	}
	log.Info("http server stopped")
	return nil
}
