package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var (
	dbClient *mongo.Client
	connect  sync.Once
)

func Connect() *mongo.Client {
	connect.Do(func() {
		serverAPI := options.ServerAPI(options.ServerAPIVersion1)
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
		uri := os.Getenv("MONGODB_URI")
		opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
		client, err := mongo.Connect(opts)
		if err != nil {
			panic(err)
		}
		if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
			panic(err)
		}
		dbClient = client
	})
	return dbClient
}

func Database() *mongo.Database {
	return Connect().Database(os.Getenv("DATABASE_NAME"))
}

func OpenCollection(collectionName string) *mongo.Collection {
	return Database().Collection(collectionName)
}

// EnsureIndexes creates the unique indexes conflict handling relies on:
// inserts race-free against duplicates and surface code 11000 instead of
// needing a find-then-insert round trip.
func EnsureIndexes(ctx context.Context) error {
	unique := func(col string, field string) error {
		_, err := OpenCollection(col).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		return err
	}

	if err := unique("categories", "slug"); err != nil {
		return err
	}
	if err := unique("products", "slug"); err != nil {
		return err
	}
	if err := unique("admin_users", "email"); err != nil {
		return err
	}
	return unique("admin_sessions", "token")
}
