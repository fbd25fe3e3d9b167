package posts

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"devbady/db"
	"devbady/models"
	"devbady/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var validStatuses = map[string]bool{
	"draft":     true,
	"published": true,
	"archived":  true,
}

func list(ctx context.Context) ([]models.Post, error) {
	cursor, err := db.PostsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func respondWithList(w http.ResponseWriter, ctx context.Context, status int) {
	posts, err := list(ctx)
	if err != nil {
		log.Println("posts list error:", err)
		http.Error(w, "Failed to reload posts", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, status, utils.M{"posts": posts})
}

// GetPosts returns all posts; ?status= narrows to one status.
func GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := db.PostsCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, "Could not retrieve posts", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		http.Error(w, "Error reading posts", http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// CreatePost inserts a draft post owned by the caller.
func CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var draft models.Post
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if draft.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if draft.Status == "" {
		draft.Status = "draft"
	}
	if !validStatuses[draft.Status] {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	draft.PostID = utils.TimestampID()
	draft.AuthorID = utils.GetUserIDFromRequest(r)
	draft.CreatedAt = time.Now()

	if _, err := db.PostsCollection.InsertOne(ctx, draft); err != nil {
		log.Println("CreatePost InsertOne error:", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	respondWithList(w, ctx, http.StatusCreated)
}

// UpdatePost patches title, body and status of one post.
func UpdatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var patch struct {
		Title  *string `json:"title"`
		Body   *string `json:"body"`
		Status *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Body != nil {
		set["body"] = *patch.Body
	}
	if patch.Status != nil {
		if !validStatuses[*patch.Status] {
			http.Error(w, "Invalid status", http.StatusBadRequest)
			return
		}
		set["status"] = *patch.Status
	}

	result, err := db.PostsCollection.UpdateOne(ctx,
		bson.M{"postid": ps.ByName("postid")},
		bson.M{"$set": set},
	)
	if err != nil {
		log.Println("UpdatePost UpdateOne error:", err)
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	respondWithList(w, ctx, http.StatusOK)
}

// DeletePost removes one post.
func DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := db.PostsCollection.DeleteOne(ctx, bson.M{"postid": ps.ByName("postid")})
	if err != nil {
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	respondWithList(w, ctx, http.StatusOK)
}

// DeleteMany removes every post in the posted id set. Unknown ids are
// skipped silently; the response reports how many actually went away.
func DeleteMany(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.IDs) == 0 {
		http.Error(w, "A non-empty ids array is required", http.StatusBadRequest)
		return
	}

	result, err := db.PostsCollection.DeleteMany(ctx, bson.M{"postid": bson.M{"$in": payload.IDs}})
	if err != nil {
		log.Println("DeleteMany error:", err)
		http.Error(w, "Failed to delete posts", http.StatusInternalServerError)
		return
	}

	posts, err := list(ctx)
	if err != nil {
		http.Error(w, "Failed to reload posts", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"deleted": result.DeletedCount,
		"posts":   posts,
	})
}

// SetStatusMany moves every post in the id set to the given status.
func SetStatusMany(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		IDs    []string `json:"ids"`
		Status string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.IDs) == 0 {
		http.Error(w, "A non-empty ids array is required", http.StatusBadRequest)
		return
	}
	if !validStatuses[payload.Status] {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	result, err := db.PostsCollection.UpdateMany(ctx,
		bson.M{"postid": bson.M{"$in": payload.IDs}},
		bson.M{"$set": bson.M{"status": payload.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("SetStatusMany error:", err)
		http.Error(w, "Failed to update posts", http.StatusInternalServerError)
		return
	}

	posts, err := list(ctx)
	if err != nil {
		http.Error(w, "Failed to reload posts", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"updated": result.ModifiedCount,
		"posts":   posts,
	})
}
