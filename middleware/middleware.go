package middleware

import (
	"context"
	"fmt"
	"net/http"

	"devbady/globals"
	"devbady/rbac"
	"devbady/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	Guest    bool   `json:"guest,omitempty"`
	jwt.RegisteredClaims
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if websocket.IsWebSocketUpgrade(r) {
			// Allow WebSocket through without setting body/headers yet
			next(w, r, ps)
			return
		}

		claims, err := claimsFromHeader(r)
		if err != nil {
			utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{
				"error":    "Unauthorized",
				"redirect": rbac.RouteLogin,
			})
			return
		}

		next(w, r.WithContext(withClaims(r.Context(), claims)), ps)
	}
}

// OptionalAuth attaches identity when a valid token is present and passes
// the request through either way.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := claimsFromHeader(r); err == nil {
			r = r.WithContext(withClaims(r.Context(), claims))
		}
		next(w, r, ps)
	}
}

// Require gates a handler on a capability. Unauthenticated callers get a
// 401 pointing at /login; authenticated callers lacking the capability get
// a 403 pointing at /dashboard.
func Require(action rbac.Action, next httprouter.Handle) httprouter.Handle {
	return Authenticate(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		role := rbac.ParseRole(roleFromContext(r.Context()))
		if !rbac.Can(role, action) {
			utils.RespondWithJSON(w, http.StatusForbidden, utils.M{
				"error":    "Insufficient role",
				"redirect": rbac.RouteDashboard,
			})
			return
		}
		next(w, r, ps)
	})
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if tokenString == "" || len(tokenString) < 8 {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}

func claimsFromHeader(r *http.Request) (*Claims, error) {
	tokenString := r.Header.Get("Authorization")
	if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
		return nil, fmt.Errorf("missing or malformed token")
	}
	return ValidateJWT(tokenString)
}

func withClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, globals.UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, globals.UsernameKey, claims.Username)
	return context.WithValue(ctx, globals.RoleKey, claims.Role)
}

func roleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(globals.RoleKey).(string)
	return role
}
