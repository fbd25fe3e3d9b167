package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"devbady/catalog"
	"devbady/models"
	"devbady/store"
	"devbady/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers load the user's cart from the persisted store, apply a pure
// reducer operation and write the result back. Every response returns
// exactly what was persisted.

type Handlers struct {
	Store *store.Store
}

func NewHandlers(s *store.Store) *Handlers {
	return &Handlers{Store: s}
}

func (h *Handlers) load(userID string) []models.CartItem {
	var items []models.CartItem
	h.Store.Get(store.CartKey(userID), &items)
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

func (h *Handlers) save(userID string, items []models.CartItem) {
	h.Store.Set(store.CartKey(userID), items)
}

// GetCart returns the user's cart lines plus total and unit count.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items := h.load(userID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items": items,
		"total": Total(items),
		"count": Count(items),
	})
}

// AddToCart merges the posted product id into the cart. The product is
// looked up in the catalog so the stored line always reflects the catalog
// record, not whatever the client posted.
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		ProductID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" {
		http.Error(w, "Missing product id", http.StatusBadRequest)
		return
	}

	product, err := catalog.GetByID(r.Context(), payload.ProductID)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	items := Add(h.load(userID), product)
	h.save(userID, items)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"items": items,
		"total": Total(items),
		"count": Count(items),
	})
}

// UpdateQuantityHandler clamps the requested quantity at 1. An unknown id
// leaves the cart unchanged and still returns 200.
func (h *Handlers) UpdateQuantityHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	items := UpdateQuantity(h.load(userID), ps.ByName("productid"), payload.Quantity)
	h.save(userID, items)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items": items,
		"total": Total(items),
		"count": Count(items),
	})
}

// RemoveFromCart drops a line; removing an absent id is a no-op.
func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items := Remove(h.load(userID), ps.ByName("productid"))
	h.save(userID, items)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items": items,
		"total": Total(items),
		"count": Count(items),
	})
}

// ClearCart empties the cart.
func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items := Clear(h.load(userID))
	h.save(userID, items)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items": items,
		"total": 0,
		"count": 0,
	})
}
