package database

import (
	"context"
	"log"
	"time"

	"ridelink/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection. A failed ping is not fatal:
// seat reservation degrades to the lease fallback while the store is down.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("invalid MongoDB configuration: %v", err)
	}
	MongoClient = client

	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("MongoDB unreachable, starting in degraded mode: %v", err)
		return
	}
	log.Println("Connected to MongoDB successfully!")
}

// Available reports whether the store currently answers a ping. All callers
// treat a failed ping as "store unreachable", never as a hang.
func Available(ctx context.Context) bool {
	if MongoClient == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return MongoClient.Ping(pingCtx, nil) == nil
}

// Collection returns a handle in the configured application database.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(config.AppConfig.DatabaseName).Collection(name)
}
