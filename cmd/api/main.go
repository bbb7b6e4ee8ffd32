package main

import (
	"context"
	"fmt"
	"log"

	"blog-api-prototype/core"
)

func main() {
	cfg, err := core.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	ctx := context.Background()

	logCloser, err := core.SetupLogging(cfg, "api.log")
	if err != nil {
		log.Fatalf("failed to setup logging: %v", err)
	}
	defer logCloser.Close()

	db, err := core.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	if err := core.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	tokens, err := core.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("failed to build token issuer: %v", err)
	}

	userRepo := core.NewPgUserRepository(db)
	postRepo := core.NewPgPostRepository(db)
	hasher := core.NewPasswordHasher(cfg.BcryptCost)
	authService := core.NewRepositoryAuthService(userRepo, hasher, tokens)

	router := core.NewRouter(cfg, authService, postRepo)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("starting api server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
