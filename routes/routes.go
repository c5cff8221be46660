package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"social-api/auth"
	"social-api/handlers"
	"social-api/logger"
	"social-api/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	systemHandler *handlers.SystemHandler,
	authMW *auth.Middleware,
) http.Handler {
	router := mux.NewRouter()
	router.Use(logger.RequestLogger)
	router.Use(monitoring.InstrumentHandler)

	api := router.PathPrefix("/api").Subrouter()

	// System routes
	api.HandleFunc("/ping", systemHandler.Ping).Methods("GET")

	// Auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// User routes
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.GetProfile).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/follow", authMW.RequireAuth(userHandler.Follow)).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/posts", userHandler.ListPosts).Methods("GET")

	// Post routes
	api.HandleFunc("/posts", postHandler.List).Methods("GET")
	api.HandleFunc("/posts", authMW.RequireAuth(postHandler.Create)).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}/comments", authMW.RequireAuth(postHandler.CreateComment)).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}/like", authMW.RequireAuth(postHandler.ToggleLike)).Methods("POST")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	return c.Handler(router)
}
