package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	router "example.com/authdemo/internal/http"
	"example.com/authdemo/internal/platform/config"
)

func main() {
	cfg := config.Load()

	handler, err := router.Build(cfg)
	if err != nil {
		log.Fatal("could not build router: ", err)
	}

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		log.Println("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Println("could not gracefully shutdown the server:", err)
		}
		close(done)
	}()

	log.Printf("listening on %s (static=%s, passwords=%s)", cfg.Port, cfg.StaticDir, cfg.PasswordScheme)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("could not listen on %s: %v", cfg.Port, err)
	}

	<-done
	log.Println("server stopped")
}
