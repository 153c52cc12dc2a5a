package database

import (
	"context"
	"crypto/tls"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo dials and pings MongoDB.
func ConnectMongo(ctx context.Context, mongoURI string) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(mongoURI)
	if strings.HasPrefix(mongoURI, "mongodb+srv://") {
		// Atlas occasionally fails TLS negotiation in some environments unless TLS 1.2 is forced.
		opts.SetTLSConfig(&tls.Config{
			MinVersion: tls.VersionTLS12,
			MaxVersion: tls.VersionTLS12,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Println("✅ Connected to MongoDB")
	return client, nil
}
