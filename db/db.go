package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection          *mongo.Collection
	ProductCollection       *mongo.Collection
	PostsCollection         *mongo.Collection
	OrderCollection         *mongo.Collection
	FilesCollection         *mongo.Collection
	NotificationsCollection *mongo.Collection
	Client                  *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("devbadydb")
	UserCollection = database.Collection("users")
	ProductCollection = database.Collection("products")
	PostsCollection = database.Collection("posts")
	OrderCollection = database.Collection("orders")
	FilesCollection = database.Collection("files")
	NotificationsCollection = database.Collection("notifications")
}
