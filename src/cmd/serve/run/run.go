package run

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jiaming2012/options-flow/src/handler"
	"github.com/jiaming2012/options-flow/src/telemetry"
)

const shutdownTimeout = 5 * time.Second

type RunArgs struct {
	Port        string
	Telemetry   bool
	ServiceName string
}

func NewRouter() http.Handler {
	router := mux.NewRouter()
	handler.SetupHandler(router)

	return otelhttp.NewHandler(router, "/")
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, args RunArgs) (err error) {
	if args.Telemetry {
		shutdown, otelErr := telemetry.SetupOTelSDK(ctx, args.ServiceName)
		if otelErr != nil {
			return fmt.Errorf("Run: %w", otelErr)
		}

		defer func() {
			err = errors.Join(err, shutdown(context.Background()))
		}()

		telemetry.InstrumentLogrus()
	}

	srv := &http.Server{
		Handler: NewRouter(),
		Addr:    fmt.Sprintf(":%s", args.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Infof("listening on :%s", args.Port)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("Run: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("Run: shutdown: %w", err)
	}

	log.Info("Run: gracefully stopped!")
	return nil
}
