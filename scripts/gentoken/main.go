// gentoken seeds a user (and optionally a team) into the configured
// document store and prints a bearer token for it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/config"
	"codeberg.org/solari/bff/internal/docstore"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	uid := flag.String("uid", "test-user-123", "user id")
	email := flag.String("email", "test@solari.dev", "user email")
	teamID := flag.String("team", "", "team id to attach the user to")
	billing := flag.String("billing", "", "billing status to set on the team")
	flag.Parse()

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open docstore: %v", err)
	}
	defer store.Close() //nolint:errcheck

	dir := docstore.NewDirectory(store)

	if err := dir.UpsertUser(ctx, *uid, *email); err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	if *teamID != "" {
		if err := store.Set(ctx, docstore.UserPath(*uid), docstore.Document{docstore.FieldTeamID: *teamID}); err != nil {
			log.Fatalf("failed to attach team: %v", err)
		}

		team := docstore.Document{docstore.FieldTeamName: *teamID}
		if *billing != "" {
			team[docstore.FieldBilling] = map[string]any{"status": *billing}
		}

		if err := store.Set(ctx, docstore.TeamPath(*teamID), team); err != nil {
			log.Fatalf("failed to write team: %v", err)
		}
	}

	token, err := auth.GenerateJWT(*uid, *email)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	fmt.Printf("user %s (%s) ready in %s docstore\n\n", *uid, *email, cfg.DocstoreDriver)
	fmt.Printf("export SOLARI_TOKEN=%q\n", token)
}

func openStore(ctx context.Context, cfg *config.Config) (docstore.Store, error) {
	switch cfg.DocstoreDriver {
	case config.DriverRedis:
		return docstore.NewRedisStoreFromURL(cfg.RedisURL)

	case config.DriverPostgres:
		db, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		store := docstore.NewPostgresStore(db)
		if err := store.Initialize(ctx); err != nil {
			return nil, err
		}

		return store, nil

	default:
		return nil, fmt.Errorf("the %s docstore does not outlive this process, use redis or postgres", cfg.DocstoreDriver)
	}
}
