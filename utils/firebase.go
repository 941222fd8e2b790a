package utils

import (
	"context"
	"log"

	"barberbook/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	AuthClient *auth.Client
	FCMClient  *messaging.Client
)

// FirebaseInit initializes the Firebase App, Auth and Messaging clients.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.FirebaseServiceAccountKeyPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}
	AuthClient = authClient

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = msgClient
}

// VerifyIDToken resolves a Firebase ID token to the caller's stable subject id.
// Returns an empty string when the token is invalid or expired.
func VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	tok, err := AuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return tok.UID, nil
}
