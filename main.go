package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/liamesika/adconnect/controllers"
	"github.com/liamesika/adconnect/database"
	appmiddleware "github.com/liamesika/adconnect/middleware"
	"github.com/liamesika/adconnect/providers"
	"github.com/liamesika/adconnect/repositories"
	"github.com/liamesika/adconnect/secretbox"
	"github.com/liamesika/adconnect/services"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Master key for token encryption at rest
	box, err := secretbox.NewFromBase64(os.Getenv("TOKEN_MASTER_KEY"))
	if err != nil {
		log.Fatalf("Failed to load TOKEN_MASTER_KEY: %v", err)
	}

	// Initialize database
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "adconnect.db"
	}
	if err := database.InitializeDatabase(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Get database connection
	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db, box)

	// Platform adapters from environment; unconfigured platforms are simply
	// not registered
	registry := providers.NewRegistry(
		providers.Config{
			ClientID:     os.Getenv("META_CLIENT_ID"),
			ClientSecret: os.Getenv("META_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("META_REDIRECT_URI"),
		},
		providers.Config{
			ClientID:     os.Getenv("GOOGLE_ADS_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_ADS_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("GOOGLE_ADS_REDIRECT_URI"),
		},
	)

	// Initialize services
	srvs := services.NewServices(repos, registry)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r, err := setupRouter(ctrl, repos)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("AdConnect starting on port %s\n", port)
	fmt.Printf("Database: %s\n", dbPath)

	log.Fatal(http.ListenAndServe(":"+port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, repos *repositories.Repositories) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // generous: IdP exchanges ride inside requests
	r.Use(middleware.Compress(5))

	// Determine if we should use secure cookies (HTTPS)
	useSecureCookies := os.Getenv("USE_HTTPS") == "true"

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "adconnect_session",
		Secure:         useSecureCookies,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "adconnect"}`)
	})
	r.Post("/login", ctrl.Session.Login)
	r.Post("/logout", ctrl.Session.Logout)

	// AUTHENTICATED ROUTES
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth)
		r.Use(appmiddleware.AuditLogger(repos.Audit))

		// Browser redirect target for the identity providers
		r.Get("/oauth/{platform}/callback", ctrl.OAuth.Callback)

		r.Route("/api/oauth", func(r chi.Router) {
			r.Get("/status", ctrl.OAuth.Status)
			r.Post("/{platform}/initiate", ctrl.OAuth.Initiate)
			r.Get("/{platform}/status", ctrl.OAuth.PlatformStatus)
			r.Post("/{platform}/refresh", ctrl.OAuth.Refresh)
			r.Delete("/{platform}", ctrl.OAuth.Revoke)
		})
	})

	return r, nil
}
