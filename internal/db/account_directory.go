package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"bookify-backend-go/internal/models"
)

// firebaseAccountDirectory implements the AccountDirectory interface on top
// of the Firebase Auth admin client.
type firebaseAccountDirectory struct {
	authClient *auth.Client
}

// NewFirebaseAccountDirectory creates a new instance of firebaseAccountDirectory.
func NewFirebaseAccountDirectory(authClient *auth.Client) AccountDirectory {
	if authClient == nil {
		log.Fatal("Firebase Auth client is not initialized for AccountDirectory.")
	}
	return &firebaseAccountDirectory{authClient: authClient}
}

// ListAccounts enumerates provider accounts through the paged user iterator.
// The limit is a soft cap: iteration stops once limit accounts are collected,
// regardless of how many pages remain.
func (d *firebaseAccountDirectory) ListAccounts(ctx context.Context, limit int) ([]models.Account, error) {
	iter := d.authClient.Users(ctx, "")

	var accounts []models.Account
	for len(accounts) < limit {
		user, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate provider accounts: %w", err)
		}
		accounts = append(accounts, exportedToAccount(user))
	}
	return accounts, nil
}

// GetByEmail looks up a single provider account by email address.
func (d *firebaseAccountDirectory) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}
	user, err := d.authClient.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, fmt.Errorf("account with email '%s' not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up account by email '%s': %w", email, err)
	}
	account := recordToAccount(user)
	return &account, nil
}

// CreateAccount creates a new provider account. Only used by the admin
// bootstrap tooling; regular sign-up happens client-side against Firebase.
func (d *firebaseAccountDirectory) CreateAccount(ctx context.Context, email, password, displayName string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required for CreateAccount operation")
	}
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	user, err := d.authClient.CreateUser(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create account for email '%s': %w", email, err)
	}
	account := recordToAccount(user)
	return &account, nil
}

func exportedToAccount(user *auth.ExportedUserRecord) models.Account {
	return recordToAccount(user.UserRecord)
}

func recordToAccount(user *auth.UserRecord) models.Account {
	account := models.Account{
		ID:          user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
	// CreationTimestamp is in milliseconds; zero means the provider reported none.
	if user.UserMetadata != nil && user.UserMetadata.CreationTimestamp > 0 {
		account.CreatedAt = time.UnixMilli(user.UserMetadata.CreationTimestamp).UTC().Format(time.RFC3339)
	}
	return account
}
