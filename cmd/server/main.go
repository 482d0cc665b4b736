/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Saturday leave engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse command-line flags
  2. Initialize SQLite store
  3. Seed the Director account (idempotent)
  4. Wire verifier, sessions, engine into the API handler
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: leave.db)
           Use ":memory:" for an in-memory database

ENVIRONMENT:
  SESSION_SECRET    HMAC key for session tokens (required)
  GOOGLE_CLIENT_ID  OAuth client ID for idToken login (optional)
  ADMIN_EMAIL       Director account email (required)
  ADMIN_PASSWORD    Director account password (required on first run)
  ADMIN_NAME        Director display name
  ENV               "production" enables Secure cookies

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/srmorg/leave-engine/api"
	"github.com/srmorg/leave-engine/auth"
	"github.com/srmorg/leave-engine/leave"
	"github.com/srmorg/leave-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "leave.db", "SQLite database path")
	flag.Parse()

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET is required")
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Fatal("ADMIN_EMAIL is required")
	}

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Seed the Director account
	uid, err := auth.EnsureDirector(context.Background(), store, adminEmail,
		os.Getenv("ADMIN_PASSWORD"), os.Getenv("ADMIN_NAME"))
	if err != nil {
		log.Fatalf("Failed to seed Director account: %v", err)
	}
	log.Printf("Director account ready (uid=%s)", uid)

	// Wire dependencies
	var audience []string
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		audience = []string{clientID}
	}
	verifier := auth.NewVerifier(store, audience)
	sessions := auth.NewSessions([]byte(secret), store)
	engine := leave.NewEngine(store)

	handler := api.NewHandler(verifier, sessions, engine)
	handler.SecureCookies = os.Getenv("ENV") == "production"

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
