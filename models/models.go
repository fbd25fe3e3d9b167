package models

import "time"

// Product is a purchasable catalog entry. Created by the admin panel,
// replaced whole on edit, never patched field-by-field.
type Product struct {
	ProductID   string    `json:"id" bson:"productid"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"` // base currency (USD)
	Category    string    `json:"category" bson:"category"`
	Image       string    `json:"image" bson:"image"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// CartItem is a product snapshot plus a quantity. At most one CartItem
// per product id exists in a cart; quantity is always >= 1.
type CartItem struct {
	ProductID   string  `json:"id" bson:"productid"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price"` // unit price
	Category    string  `json:"category" bson:"category"`
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

// ThemeConfig is the site-wide branding singleton.
type ThemeConfig struct {
	PrimaryColor   string `json:"primaryColor" bson:"primaryColor"`
	SecondaryColor string `json:"secondaryColor" bson:"secondaryColor"`
	IsDarkMode     bool   `json:"isDarkMode" bson:"isDarkMode"`
	SiteName       string `json:"siteName" bson:"siteName"`
	Currency       string `json:"currency" bson:"currency"` // "USD" or "INR"
}

// User is an account record. Password holds the bcrypt hash, never the
// plaintext, and is stripped from API responses.
type User struct {
	UserID        string    `json:"id" bson:"userid"`
	Username      string    `json:"name" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	Role          string    `json:"role" bson:"role"` // rbac.RoleUser / rbac.RoleAdmin
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	LastLogin     time.Time `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

// Order is a finalized checkout.
type Order struct {
	OrderID   string     `json:"orderId" bson:"orderId"`
	UserID    string     `json:"userId" bson:"userId"`
	Items     []CartItem `json:"items" bson:"items"`
	Total     float64    `json:"total" bson:"total"`
	Currency  string     `json:"currency" bson:"currency"`
	Status    string     `json:"status" bson:"status"` // "pending", "completed"
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}

// Post is an admin-managed content entry (blog/announcement).
type Post struct {
	PostID    string    `json:"id" bson:"postid"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	Status    string    `json:"status" bson:"status"` // "draft", "published", "archived"
	AuthorID  string    `json:"authorId" bson:"authorId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// FileRecord describes an upload tracked by the file share.
type FileRecord struct {
	FileID      string    `json:"id" bson:"fileid"`
	FolderID    string    `json:"folderId" bson:"folderId"`
	UserID      string    `json:"userId" bson:"userId"`
	Name        string    `json:"name" bson:"name"`
	Size        int64     `json:"size" bson:"size"`
	MimeType    string    `json:"mimeType" bson:"mimeType"`
	WebViewLink string    `json:"webViewLink" bson:"webViewLink"`
	Thumbnail   string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

// Notification is a dashboard feed entry produced by the event worker.
type Notification struct {
	UserID    string    `json:"userId" bson:"userId"`
	Event     string    `json:"event" bson:"event"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
