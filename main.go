package main

import (
	"log"
	"net/http"

	"appcost/config"
	"appcost/fx"
	"appcost/handlers"
	"appcost/middleware"
	"appcost/scraper"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	fetcher := scraper.NewPageFetcher(cfg.FetchTimeout, cfg.UserAgent)
	fxClient := fx.NewClient(cfg.FxEndpoint, cfg.FetchTimeout, cfg.FxCacheTTL)
	h := handlers.NewHandlers(fetcher, fxClient, cfg)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerSecond))

	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/", h.GetAppPrice).Methods("GET", "OPTIONS")
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	// CORS configuration: the companion UI may be served from anywhere, so
	// the requesting origin is reflected back.
	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowedMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:  []string{"*"},
		MaxAge:          86400,
	})

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	log.Printf("   GET  /?url=<appStoreUrl> - Look up by product page URL")
	log.Printf("   GET  /?appId=<id>&region=<code> - Look up by app id")
	log.Printf("   GET  /health - Health check")
	log.Printf("FX rates endpoint: %s", fxClient.Endpoint())

	log.Fatal(http.ListenAndServe(addr, c.Handler(r)))
}
