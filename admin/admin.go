package admin

import (
	"context"
	"net/http"
	"time"

	"devbady/db"
	"devbady/models"
	"devbady/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListUsers returns every registered account for the admin user table.
// Password hashes never serialize (the model strips them).
func ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.UserCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		http.Error(w, "Failed to fetch users", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		http.Error(w, "Error processing users", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// Stats feeds the admin overview cards: entity counts across the site.
func Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	collections := map[string]*mongo.Collection{
		"users":    db.UserCollection,
		"products": db.ProductCollection,
		"posts":    db.PostsCollection,
		"orders":   db.OrderCollection,
		"files":    db.FilesCollection,
	}

	counts := utils.M{}
	for name, coll := range collections {
		n, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			http.Error(w, "Failed to count "+name, http.StatusInternalServerError)
			return
		}
		counts[name] = n
	}

	utils.RespondWithJSON(w, http.StatusOK, counts)
}
