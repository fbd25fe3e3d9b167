package auth

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"devbady/db"
	"devbady/models"
	"devbady/rbac"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD if
// it does not exist yet. Credentials stay out of source and client bundles.
func SeedAdmin(ctx context.Context) {
	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}
	if len(password) < minPasswordLength {
		log.Println("ADMIN_PASSWORD too short, skipping admin seed")
		return
	}

	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return // already seeded
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("Admin seed lookup failed: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Admin seed hash failed: %v", err)
		return
	}

	admin := models.User{
		UserID:    "admin-001",
		Username:  "DevBady Admin",
		Email:     email,
		Password:  string(hashed),
		Role:      string(rbac.RoleAdmin),
		CreatedAt: time.Now(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, admin); err != nil {
		log.Printf("Admin seed insert failed: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", email)
}
