package routes

import (
	"net/http"

	"devbady/admin"
	"devbady/aistudio"
	"devbady/auth"
	"devbady/cart"
	"devbady/catalog"
	"devbady/checkout"
	"devbady/fileshare"
	"devbady/middleware"
	"devbady/posts"
	"devbady/profile"
	"devbady/ratelim"
	"devbady/rbac"
	"devbady/receipts"
	"devbady/theme"

	"github.com/julienschmidt/httprouter"
)

// Deps carries the stateful handler sets the route tables need.
type Deps struct {
	RateLimiter *ratelim.RateLimiter
	Cart        *cart.Handlers
	Theme       *theme.Handlers
	Checkout    *checkout.Handlers
	Receipts    *receipts.Handlers
	FileShare   *fileshare.Handlers
	Hub         *fileshare.Hub
	AIStudio    *aistudio.Handlers
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
	router.ServeFiles("/static/thumbs/*filepath", http.Dir("static/thumbs"))
}

func AddAuthRoutes(router *httprouter.Router, d *Deps) {
	router.POST("/api/auth/register", d.RateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", d.RateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", d.RateLimiter.Limit(middleware.Authenticate(auth.RefreshToken)))
	router.POST("/api/auth/guest", d.RateLimiter.Limit(auth.GuestSession))

	router.GET("/api/route-gate", middleware.OptionalAuth(middleware.RouteGate))
}

func AddCatalogRoutes(router *httprouter.Router, d *Deps) {
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/products/:productid", catalog.GetProduct)
	router.POST("/api/products", middleware.Require(rbac.ActionManageCatalog, catalog.CreateProduct))
	router.PUT("/api/products/:productid", middleware.Require(rbac.ActionManageCatalog, catalog.UpdateProduct))
	router.DELETE("/api/products/:productid", middleware.Require(rbac.ActionManageCatalog, catalog.DeleteProduct))
}

func AddCartRoutes(router *httprouter.Router, d *Deps) {
	router.GET("/api/cart", middleware.Require(rbac.ActionUseCart, d.Cart.GetCart))
	router.POST("/api/cart/items", middleware.Require(rbac.ActionUseCart, d.Cart.AddToCart))
	router.PUT("/api/cart/items/:productid", middleware.Require(rbac.ActionUseCart, d.Cart.UpdateQuantityHandler))
	router.DELETE("/api/cart/items/:productid", middleware.Require(rbac.ActionUseCart, d.Cart.RemoveFromCart))
	router.DELETE("/api/cart", middleware.Require(rbac.ActionUseCart, d.Cart.ClearCart))
}

func AddCheckoutRoutes(router *httprouter.Router, d *Deps) {
	router.POST("/api/checkout", d.RateLimiter.Limit(middleware.Require(rbac.ActionCheckout, d.Checkout.PlaceOrder)))
	router.GET("/api/orders", middleware.Require(rbac.ActionCheckout, d.Checkout.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Require(rbac.ActionCheckout, d.Checkout.GetOrder))
	router.GET("/api/orders/:orderid/receipt", middleware.Require(rbac.ActionCheckout, d.Receipts.PrintReceipt))
}

func AddThemeRoutes(router *httprouter.Router, d *Deps) {
	router.GET("/api/theme", d.Theme.GetTheme)
	router.PUT("/api/theme", middleware.Require(rbac.ActionManageTheme, d.Theme.UpdateTheme))
	router.PUT("/api/theme/currency", d.Theme.SetCurrency)
}

func AddPostsRoutes(router *httprouter.Router, d *Deps) {
	router.GET("/api/posts", posts.GetPosts)
	router.POST("/api/posts", middleware.Require(rbac.ActionManagePosts, posts.CreatePost))
	router.PUT("/api/posts/:postid", middleware.Require(rbac.ActionManagePosts, posts.UpdatePost))
	router.DELETE("/api/posts/:postid", middleware.Require(rbac.ActionManagePosts, posts.DeletePost))
	router.POST("/api/posts/bulk/delete", middleware.Require(rbac.ActionManagePosts, posts.DeleteMany))
	router.POST("/api/posts/bulk/status", middleware.Require(rbac.ActionManagePosts, posts.SetStatusMany))
}

func AddAdminRoutes(router *httprouter.Router, d *Deps) {
	router.GET("/api/admin/users", middleware.Require(rbac.ActionViewAdmin, admin.ListUsers))
	router.GET("/api/admin/stats", middleware.Require(rbac.ActionViewAdmin, admin.Stats))
}

func AddProfileRoutes(router *httprouter.Router, d *Deps) {
	router.GET("/api/profile", middleware.Require(rbac.ActionViewDashboard, profile.GetProfile))
	router.GET("/api/notifications", middleware.Require(rbac.ActionViewDashboard, profile.GetNotifications))
}

func AddFileShareRoutes(router *httprouter.Router, d *Deps) {
	router.GET("/api/files/:folderid", middleware.Require(rbac.ActionShareFiles, d.FileShare.ListFiles))
	router.POST("/api/files/:folderid/upload", middleware.Require(rbac.ActionShareFiles, d.FileShare.UploadFile))
	router.GET("/ws/uploads/:uploadid", middleware.Authenticate(fileshare.ProgressSocket(d.Hub)))
}

func AddAIRoutes(router *httprouter.Router, d *Deps) {
	router.POST("/api/ai/chat", d.RateLimiter.Limit(middleware.Require(rbac.ActionUseAIStudio, d.AIStudio.Chat)))
}
