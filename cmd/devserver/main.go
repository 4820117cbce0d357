// devserver runs the local development translation backend the app
// points at when TALKBUDDY_PRODUCTION=false.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talkbuddy/internal/devapi"
	"talkbuddy/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	log := logging.New("devserver")

	server := &http.Server{
		Addr:              *addr,
		Handler:           devapi.NewRouter(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", *addr).Msg("dev server listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
