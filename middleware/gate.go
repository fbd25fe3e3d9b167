package middleware

import (
	"net/http"

	"devbady/rbac"
	"devbady/utils"

	"github.com/julienschmidt/httprouter"
)

// RouteGate answers "may the current viewer see this route, and if not,
// where do they go". The SPA calls it before rendering a private view, so
// the redirect decision lives here in one place instead of in every page.
// Register it behind OptionalAuth so guests get an answer too.
func RouteGate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	route := r.URL.Query().Get("route")
	if route == "" {
		http.Error(w, "Route query parameter is required", http.StatusBadRequest)
		return
	}

	role := rbac.ParseRole(utils.GetRoleFromRequest(r))
	decision := rbac.Decide(role, route)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"allow":    decision.Allow,
		"redirect": decision.RedirectTo,
	})
}
