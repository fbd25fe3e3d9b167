package checkout

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"devbady/cart"
	"devbady/db"
	"devbady/models"
	"devbady/mq"
	"devbady/store"
	"devbady/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handlers turn a cart into an order. PlaceOrder is the "successful
// checkout simulation": no payment gateway is involved, the order is
// recorded as pending and the cart is cleared.
type Handlers struct {
	Store *store.Store
}

func NewHandlers(s *store.Store) *Handlers {
	return &Handlers{Store: s}
}

// PlaceOrder snapshots the cart into an order, persists it and clears the
// cart. An empty cart cannot be checked out.
func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var items []models.CartItem
	h.Store.Get(store.CartKey(userID), &items)
	if len(items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	var theme models.ThemeConfig
	h.Store.Get(store.KeyTheme, &theme)

	order := models.Order{
		OrderID:   "ORD" + strconv.FormatInt(time.Now().UnixNano()%1e6, 10),
		UserID:    userID,
		Items:     items,
		Total:     cart.Total(items),
		Currency:  theme.Currency,
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("PlaceOrder InsertOne error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	h.Store.Set(store.CartKey(userID), cart.Clear(items))

	mq.Emit("order-placed", mq.Event{
		UserID: userID,
		Message: fmt.Sprintf("Order %s placed by %s, total %.2f %s",
			order.OrderID, utils.GetUsernameFromRequest(r), order.Total, order.Currency),
	})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders lists the caller's orders, newest first.
func (h *Handlers) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GetOrder returns one order belonging to the caller.
func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{
		"orderId": ps.ByName("orderid"),
		"userId":  userID,
	}).Decode(&order)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}
