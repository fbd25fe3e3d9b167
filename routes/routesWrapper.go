package routes

import (
	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, d *Deps) {
	AddStaticRoutes(router)
	AddAuthRoutes(router, d)
	AddCatalogRoutes(router, d)
	AddCartRoutes(router, d)
	AddCheckoutRoutes(router, d)
	AddThemeRoutes(router, d)
	AddPostsRoutes(router, d)
	AddAdminRoutes(router, d)
	AddProfileRoutes(router, d)
	AddFileShareRoutes(router, d)
	AddAIRoutes(router, d)
}
