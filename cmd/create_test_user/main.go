package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"skillsync/internal/auth"
	"skillsync/internal/config"
	"skillsync/internal/db"
	"skillsync/internal/schema"
	"skillsync/internal/storage"
)

// Seeds a user and prints a bearer token for it, for poking the API with
// curl during development.
func main() {
	email := flag.String("email", "test@example.com", "user email")
	name := flag.String("name", "Test User", "user name")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()
	store := storage.NewPGStore(pool)

	ctx := context.Background()

	user, err := store.GetUserByEmail(ctx, *email)
	switch {
	case err == nil:
		log.Printf("user already exists id=%d", user.ID)
	case errors.Is(err, storage.ErrNotFound):
		user, err = store.CreateUser(ctx, schema.UserValues{Email: *email, Name: *name})
		if err != nil {
			log.Fatalf("create user failed: %v", err)
		}
		log.Printf("user created id=%d", user.ID)
	default:
		log.Fatalf("get user failed: %v", err)
	}

	tokens := auth.NewTokens(cfg.SessionSecret, cfg.SessionTTL)
	token, err := tokens.Issue(user.ID)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	log.Printf("token=%s", token)
}
