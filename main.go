package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"social-api/auth"
	"social-api/config"
	"social-api/database"
	"social-api/handlers"
	"social-api/logger"
	"social-api/repositories"
	"social-api/routes"
)

func main() {
	cfg := config.Load()
	logger.InitLogger()

	db, err := database.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)

	secret := []byte(cfg.JWTSecret)
	authMW := auth.NewMiddleware(userRepo, secret)

	authHandler := handlers.NewAuthHandler(userRepo, secret, cfg.TokenTTL)
	userHandler := handlers.NewUserHandler(userRepo, postRepo)
	postHandler := handlers.NewPostHandler(postRepo)
	systemHandler := handlers.NewSystemHandler()

	handler := routes.SetupRoutes(authHandler, userHandler, postHandler, systemHandler, authMW)

	logrus.Infof("Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
