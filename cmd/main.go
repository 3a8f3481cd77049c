package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/Leandrotvr/foro-front/pkg/config"
	"github.com/Leandrotvr/foro-front/pkg/forum"
	"github.com/Leandrotvr/foro-front/pkg/logger"
	"github.com/Leandrotvr/foro-front/pkg/middleware"
	"github.com/Leandrotvr/foro-front/pkg/post"
)

func main() {
	seedCount := flag.Int("seed", 0, "create this many fake posts through the API and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed loading config: %v", err)
	}

	l := logger.Run(cfg.LogLevel)
	defer l.Sync() //nolint:errcheck

	postsRepo := post.NewPostRepo(post.DefaultBaseURL, http.DefaultClient)

	if *seedCount > 0 {
		if err := seed(context.Background(), postsRepo, *seedCount); err != nil {
			l.Fatalf("main: seeding failed: %v", err)
		}
		return
	}

	controller := forum.NewController(postsRepo)
	pageHandler := forum.NewPageHandler(controller)

	r := mux.NewRouter()
	pageHandler.Register(r)

	logMiddleware := middleware.NewLoggingMiddleware(l)
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)

	// First display of the page: fetch posts in the background, the
	// websocket delivers them once they arrive.
	go controller.Mount(logger.WithLogger(context.Background(), l))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		l.Infof("Serving at http://localhost%s/", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatalf("main: server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	l.Infof("main: caught %v, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Errorf("main: shutdown failed: %v", err)
	}
}
