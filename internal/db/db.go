// Package db manages the MongoDB connection and named collections.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Client wraps mongo.Client and exposes the vetlink collections.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB, verifies the connection with a ping and returns a
// Client over the vetlink_db database.
func New(ctx context.Context, mongoURI string) (*Client, error) {
	opts := options.Client().
		ApplyURI(mongoURI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database("vetlink_db"),
	}, nil
}

// UsersCollection returns the users (credentials) collection.
func (c *Client) UsersCollection() *mongo.Collection {
	return c.db.Collection("users")
}

// MessagesCollection returns the messages collection.
func (c *Client) MessagesCollection() *mongo.Collection {
	return c.db.Collection("messages")
}

// ProfilesCollection returns the profiles collection.
func (c *Client) ProfilesCollection() *mongo.Collection {
	return c.db.Collection("profiles")
}

// VetActivityCollection returns the vet_activity (presence) collection.
func (c *Client) VetActivityCollection() *mongo.Collection {
	return c.db.Collection("vet_activity")
}

// VetProfilesCollection returns the profile_vet collection.
func (c *Client) VetProfilesCollection() *mongo.Collection {
	return c.db.Collection("profile_vet")
}

// PetsCollection returns the pet_profile collection.
func (c *Client) PetsCollection() *mongo.Collection {
	return c.db.Collection("pet_profile")
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// CreateIndexes creates the indexes every store relies on. Unique user_id
// indexes double as the only guard against duplicate presence/profile rows,
// so this must run before the server starts serving.
func (c *Client) CreateIndexes(ctx context.Context) error {
	// users: one account per email; backs the duplicate-registration error.
	_, err := c.UsersCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    map[string]int{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	// messages: the room history query sorts on (created_at, _id) within a
	// room, so index room_id with created_at.
	_, err = c.MessagesCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: map[string]int{"room_id": 1, "created_at": 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create messages index: %w", err)
	}

	// One row per user in each profile/presence collection.
	for _, target := range []struct {
		name string
		coll *mongo.Collection
	}{
		{"profiles", c.ProfilesCollection()},
		{"vet_activity", c.VetActivityCollection()},
		{"profile_vet", c.VetProfilesCollection()},
	} {
		_, err = target.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    map[string]int{"user_id": 1},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s index: %w", target.name, err)
		}
	}

	// vet_activity: discovery filters on is_online.
	_, err = c.VetActivityCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: map[string]int{"is_online": 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create vet_activity online index: %w", err)
	}

	// pet_profile: list-by-owner in insertion order.
	_, err = c.PetsCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: map[string]int{"user_id": 1, "created_at": 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create pet_profile index: %w", err)
	}

	return nil
}
