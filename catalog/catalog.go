package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"devbady/db"
	"devbady/models"
	"devbady/store"
	"devbady/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedIfEmpty loads the default catalog into Mongo on first run so a fresh
// deployment shows the same storefront the demo always has.
func SeedIfEmpty(ctx context.Context) {
	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Catalog seed count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	seed := store.DefaultProducts()
	docs := make([]interface{}, 0, len(seed))
	now := time.Now()
	for _, p := range seed {
		p.CreatedAt = now
		docs = append(docs, p)
	}
	if _, err := db.ProductCollection.InsertMany(ctx, docs); err != nil {
		log.Printf("Catalog seed insert failed: %v", err)
		return
	}
	log.Printf("Seeded catalog with %d products", len(seed))
}

// GetByID fetches one product for other packages (cart merges against the
// catalog record, never the client payload).
func GetByID(ctx context.Context, id string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": id}).Decode(&product)
	return product, err
}

func list(ctx context.Context) ([]models.Product, error) {
	cursor, err := db.ProductCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetProducts returns the whole catalog, optional ?category= filter.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if cat := r.URL.Query().Get("category"); cat != "" {
		filter["category"] = cat
	}

	cursor, err := db.ProductCollection.Find(ctx, filter)
	if err != nil {
		log.Println("GetProducts Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("GetProducts cursor.All error:", err)
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct returns a single catalog entry.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, err := GetByID(r.Context(), ps.ByName("productid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Could not retrieve product", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

func validate(p models.Product) string {
	if p.Name == "" {
		return "Name is required"
	}
	if p.Price < 0 {
		return "Price must be non-negative"
	}
	if p.Category == "" {
		return "Category is required"
	}
	return ""
}

// CreateProduct inserts a new catalog entry and responds with the full
// re-read list, so the admin panel always renders from the source of truth.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var draft models.Product
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if msg := validate(draft); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	draft.ProductID = utils.TimestampID()
	draft.CreatedAt = time.Now()

	if _, err := db.ProductCollection.InsertOne(ctx, draft); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	products, err := list(ctx)
	if err != nil {
		http.Error(w, "Failed to reload catalog", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"id":       draft.ProductID,
		"products": products,
	})
}

// UpdateProduct is a full-record replace, matching the admin form's
// edit-then-save behavior. Partial patches are not supported.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("productid")

	var replacement models.Product
	if err := json.NewDecoder(r.Body).Decode(&replacement); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if msg := validate(replacement); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	replacement.ProductID = id

	result, err := db.ProductCollection.ReplaceOne(ctx, bson.M{"productid": id}, replacement)
	if err != nil {
		log.Println("UpdateProduct ReplaceOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	products, err := list(ctx)
	if err != nil {
		http.Error(w, "Failed to reload catalog", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"products": products})
}

// DeleteProduct removes one entry; deleting an unknown id returns 404.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("productid")
	result, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": id})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	products, err := list(ctx)
	if err != nil {
		http.Error(w, "Failed to reload catalog", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"products": products})
}
