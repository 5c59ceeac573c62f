package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"bookify-backend-go/internal/config"
	"bookify-backend-go/internal/db"
	"bookify-backend-go/internal/models"
)

// adminctl grants the admin role to a Firebase account, optionally
// creating the account first. It writes the role document directly,
// which is the only way to bootstrap the first admin.
func main() {
	email := pflag.String("email", "", "email of the account to promote")
	password := pflag.String("password", "", "password for the account when used with --create")
	displayName := pflag.String("display-name", "", "display name for the account when used with --create")
	create := pflag.Bool("create", false, "create the account if it does not exist")
	pflag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "adminctl: --email is required")
		pflag.Usage()
		os.Exit(2)
	}
	if *create && *password == "" {
		fmt.Fprintln(os.Stderr, "adminctl: --create requires --password")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on process environment.")
	}

	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load application configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.InitFirebase(ctx, appConfig); err != nil {
		log.Fatalf("Failed to initialize Firebase Admin SDK: %v", err)
	}

	accountDirectory := db.NewFirebaseAccountDirectory(db.GetFirebaseAuthClient())
	roleRepo := db.NewFirestoreRoleRepository(db.GetFirestoreClient())

	account, err := accountDirectory.GetByEmail(ctx, *email)
	switch {
	case err == nil:
		fmt.Printf("Found existing account %s (%s)\n", account.Email, account.ID)
	case errors.Is(err, db.ErrNotFound):
		if !*create {
			log.Fatalf("No account found for %s. Re-run with --create to create it.", *email)
		}
		account, err = accountDirectory.CreateAccount(ctx, *email, *password, *displayName)
		if err != nil {
			log.Fatalf("Failed to create account: %v", err)
		}
		fmt.Printf("Created account %s (%s)\n", account.Email, account.ID)
	default:
		log.Fatalf("Failed to look up account: %v", err)
	}

	if err := roleRepo.Set(ctx, account.ID, models.RoleAdmin); err != nil {
		log.Fatalf("Failed to assign admin role: %v", err)
	}
	fmt.Printf("Granted admin role to %s\n", account.Email)
}
