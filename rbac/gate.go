package rbac

// Route names mirror the SPA's views. Public routes are reachable by
// anyone; private routes redirect unauthenticated visitors to /login,
// while /admin redirects an authenticated non-admin to /dashboard.
const (
	RouteHome      = "/"
	RouteProducts  = "/products"
	RouteContact   = "/contact"
	RoutePrivacy   = "/privacy"
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteDashboard = "/dashboard"
	RouteCart      = "/cart"
	RouteCheckout  = "/checkout"
	RouteFileShare = "/file-share"
	RouteAIStudio  = "/ai-studio"
	RouteAdmin     = "/admin"
)

var publicRoutes = map[string]bool{
	RouteHome:     true,
	RouteProducts: true,
	RouteContact:  true,
	RoutePrivacy:  true,
	RouteLogin:    true,
	RouteRegister: true,
	RouteCart:     true, // viewing the cart page is public; checkout is not
	RouteAIStudio: true, // guest window handled by token expiry
}

// Decision is the outcome of gating one route for one viewer.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide runs the route gate state machine for a viewer role.
func Decide(role Role, route string) Decision {
	if publicRoutes[route] {
		return Decision{Allow: true}
	}

	switch role {
	case RoleGuest:
		return Decision{RedirectTo: RouteLogin}
	case RoleAdmin:
		return Decision{Allow: true}
	default:
		if route == RouteAdmin {
			return Decision{RedirectTo: RouteDashboard}
		}
		return Decision{Allow: true}
	}
}
