// Package mongodb stores tickets and user profiles in MongoDB collections
// whose documents keep the field names of the original document store.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/back-informatica/chamados/internal/shared/config"
)

const (
	ticketsCollection = "tickets"
	usersCollection   = "users"

	connectTimeout = 10 * time.Second
)

type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the configured deployment and pings the primary.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.GetMongoURI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	name := cfg.Database
	if name == "" {
		name = "chamados"
	}
	return &Client{client: client, db: client.Database(name)}, nil
}

func (c *Client) Database() *mongo.Database {
	return c.db
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
