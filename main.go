package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devbady/aistudio"
	"devbady/auth"
	"devbady/cart"
	"devbady/catalog"
	"devbady/checkout"
	"devbady/currency"
	"devbady/fileshare"
	"devbady/mq"
	"devbady/ratelim"
	"devbady/rdx"
	"devbady/receipts"
	"devbady/routes"
	"devbady/store"
	"devbady/theme"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// Persisted store over Redis, with the seed catalog and theme defaults.
	kv := store.New(&store.RedisBackend{Conn: rdx.Conn})
	store.RegisterSeeds(kv)

	// One-time seeds: catalog defaults and the env-configured admin account.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 15*time.Second)
	catalog.SeedIfEmpty(seedCtx)
	auth.SeedAdmin(seedCtx)
	seedCancel()

	// background notification worker
	go mq.StartNotificationWorker()

	// upload progress hub
	hub := fileshare.NewHub()
	go hub.Run()

	formatter := currency.NewFormatter(currency.FromEnv())

	deps := &routes.Deps{
		RateLimiter: ratelim.NewRateLimiter(),
		Cart:        cart.NewHandlers(kv),
		Theme:       theme.NewHandlers(kv),
		Checkout:    checkout.NewHandlers(kv),
		Receipts:    receipts.NewHandlers(formatter),
		FileShare:   fileshare.NewHandlers(hub),
		Hub:         hub,
		AIStudio:    aistudio.NewHandlers(context.Background()),
	}

	router := httprouter.New()
	routes.RoutesWrapper(router, deps)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down upload hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
