// Package main is the entry point of the association website.
//
// This file is the dependency wire-up: config, database, content lists,
// repositories, services, handlers, router, server. No package-level
// mutable state — everything is built here and passed down.
package main

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/zambiatennis/ztaweb/config"
	"github.com/zambiatennis/ztaweb/content"
	"github.com/zambiatennis/ztaweb/database"
	"github.com/zambiatennis/ztaweb/handlers"
	"github.com/zambiatennis/ztaweb/middleware"
	"github.com/zambiatennis/ztaweb/pkg/ratelimit"
	"github.com/zambiatennis/ztaweb/repository"
	"github.com/zambiatennis/ztaweb/services"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] ztaweb server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		log.Fatalf("[main] failed to open embedded migrations: %v", err)
	}

	db, err := database.New(cfg.Database.Path, migrationsFS)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Content ───
	// The events list is loaded once; any problem with the file falls
	// back to the built-in defaults and is only logged.
	loaded := content.LoadEvents(cfg.Content.EventsFile)
	if loaded.FromFallback {
		log.Printf("[content] using default events (%v)", loaded.Reason)
	} else {
		log.Printf("[content] loaded %d events from %s", len(loaded.Events), cfg.Content.EventsFile)
	}

	// ─── 4. Repository Layer ───
	memberRepo := repository.NewSQLiteMemberRepo(db.Conn)
	messageRepo := repository.NewSQLiteContactMessageRepo(db.Conn)

	// ─── 5. Service Layer ───
	membershipService := services.NewMembershipService(memberRepo)
	contactService := services.NewContactService(messageRepo)
	contentService := services.NewContentService(content.News(), loaded.Events, content.Rankings())
	galleryService := services.NewGalleryService(cfg.Content.StaticDir)

	// ─── 6. Handler Layer ───
	render, err := handlers.NewRenderer()
	if err != nil {
		log.Fatalf("[main] failed to parse templates: %v", err)
	}

	pageHandler := handlers.NewPageHandler(contentService, render, cfg.SecretKey)
	membershipHandler := handlers.NewMembershipHandler(membershipService, render, cfg.SecretKey)
	contactHandler := handlers.NewContactHandler(contactService, render, cfg.SecretKey)
	galleryHandler := handlers.NewGalleryHandler(galleryService, render)
	apiHandler := handlers.NewAPIHandler(contentService)

	// ─── 7. Middleware ───
	formLimiter := ratelimit.NewFormRateLimiter(5, 10*time.Second, 30*time.Second)
	defer formLimiter.Stop()
	limitMiddleware := middleware.NewRateLimitMiddleware(formLimiter, cfg.SecretKey)

	// ─── 8. HTTP Router ───
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", pageHandler.Home)
	mux.HandleFunc("GET /about", pageHandler.About)
	mux.HandleFunc("GET /news", pageHandler.News)
	mux.HandleFunc("GET /events", pageHandler.Events)
	mux.HandleFunc("GET /ranking", pageHandler.Ranking)

	// Forms — GET renders, POST persists and redirects back. Only the
	// POSTs go through the rate limiter.
	mux.HandleFunc("GET /membership", membershipHandler.Show)
	mux.Handle("POST /membership", limitMiddleware.Limit(http.HandlerFunc(membershipHandler.Submit)))
	mux.HandleFunc("GET /contact", contactHandler.Show)
	mux.Handle("POST /contact", limitMiddleware.Limit(http.HandlerFunc(contactHandler.Submit)))

	// Galleries
	mux.HandleFunc("GET /veterans", galleryHandler.Veterans)
	mux.HandleFunc("GET /juniors", galleryHandler.Juniors)
	mux.HandleFunc("GET /seniors", galleryHandler.Seniors)

	// JSON API
	mux.HandleFunc("GET /api/events", apiHandler.Events)
	mux.HandleFunc("GET /api/health", apiHandler.Health)

	// Static files — stylesheets and the gallery images.
	mux.Handle("GET /static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir(cfg.Content.StaticDir))))

	// ─── 9. CORS ───
	// The events API feeds calendar widgets on club sites, so reads are
	// open to any origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	handler := corsHandler.Handler(mux)

	// ─── 10. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 11. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
