package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseConfig carries either a full service-account JSON document or its three essential
// fields as separate values.
type FirebaseConfig struct {
	ProjectID       string
	CredentialsJSON string
	ClientEmail     string
	PrivateKey      string
}

// credentialsJSON returns the service-account document to authenticate with, or nil to fall
// back to application default credentials.
func (c FirebaseConfig) credentialsJSON() ([]byte, error) {
	if strings.TrimSpace(c.CredentialsJSON) != "" {
		return []byte(c.CredentialsJSON), nil
	}
	if c.ClientEmail == "" && c.PrivateKey == "" {
		return nil, nil
	}
	if c.ProjectID == "" || c.ClientEmail == "" || c.PrivateKey == "" {
		return nil, fmt.Errorf("firebase: project id, client email and private key must all be set")
	}
	// Keys pasted into env files usually carry literal \n sequences.
	key := strings.ReplaceAll(c.PrivateKey, `\n`, "\n")
	return json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   c.ProjectID,
		"client_email": c.ClientEmail,
		"private_key":  key,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
}

// NewFirebaseApp initialises the Firebase Admin SDK once for the process.
func NewFirebaseApp(ctx context.Context, cfg FirebaseConfig) (*firebase.App, error) {
	creds, err := cfg.credentialsJSON()
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if creds != nil {
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: init app: %w", err)
	}
	return app, nil
}

// NewStorageClient opens a Cloud Storage client with the same service account as Firebase.
func NewStorageClient(ctx context.Context, cfg FirebaseConfig) (*storage.Client, error) {
	creds, err := cfg.credentialsJSON()
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if creds != nil {
		opts = append(opts, option.WithCredentialsJSON(creds))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: new client: %w", err)
	}
	return client, nil
}
