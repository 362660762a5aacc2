package httpserver

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Run serves until ctx is cancelled, then drains HTTP requests and closes
// every websocket connection.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              srv.addr(),
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		srv.l.Infof(ctx, "internal.httpserver.Run: listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		srv.l.Infof(ctx, "internal.httpserver.Run: shutting down, %d open connections", srv.ws.Connections())

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		srv.ws.Shutdown()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	})

	return eg.Wait()
}
