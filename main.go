package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "born2ride/internal/config"
	intdb "born2ride/internal/db"
	router "born2ride/internal/http"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB()
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(intconfig.DB); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}
	if env.SeedData {
		if err := intdb.Seed(intconfig.DB); err != nil {
			log.Printf("warning: seed failed: %v", err)
		}
	}

	// Router (Gin engine)
	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Born2Ride API listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
