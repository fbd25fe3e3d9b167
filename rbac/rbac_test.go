package rbac

import "testing"

func TestDecideUnauthenticated(t *testing.T) {
	for _, route := range []string{RouteHome, RouteProducts, RouteContact, RoutePrivacy, RouteLogin, RouteRegister} {
		if d := Decide(RoleGuest, route); !d.Allow {
			t.Errorf("guest should reach public route %s, got redirect to %s", route, d.RedirectTo)
		}
	}

	for _, route := range []string{RouteDashboard, RouteAdmin, RouteCheckout, RouteFileShare} {
		d := Decide(RoleGuest, route)
		if d.Allow {
			t.Errorf("guest should not reach %s", route)
		}
		if d.RedirectTo != RouteLogin {
			t.Errorf("guest at %s should redirect to /login, got %s", route, d.RedirectTo)
		}
	}
}

func TestDecideAuthenticatedUser(t *testing.T) {
	for _, route := range []string{RouteDashboard, RouteCart, RouteCheckout, RouteFileShare} {
		if d := Decide(RoleUser, route); !d.Allow {
			t.Errorf("user should reach %s, got redirect to %s", route, d.RedirectTo)
		}
	}

	// Insufficient role redirects to /dashboard, not /login.
	d := Decide(RoleUser, RouteAdmin)
	if d.Allow {
		t.Fatal("user should not reach /admin")
	}
	if d.RedirectTo != RouteDashboard {
		t.Errorf("user at /admin should redirect to /dashboard, got %s", d.RedirectTo)
	}
}

func TestDecideAdmin(t *testing.T) {
	for _, route := range []string{RouteAdmin, RouteDashboard, RouteCheckout, RouteFileShare, RouteProducts} {
		if d := Decide(RoleAdmin, route); !d.Allow {
			t.Errorf("admin should reach %s", route)
		}
	}
}

func TestCan(t *testing.T) {
	tests := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleGuest, ActionBrowseCatalog, true},
		{RoleGuest, ActionUseCart, false},
		{RoleGuest, ActionViewAdmin, false},
		{RoleUser, ActionUseCart, true},
		{RoleUser, ActionCheckout, true},
		{RoleUser, ActionManageCatalog, false},
		{RoleUser, ActionViewAdmin, false},
		{RoleAdmin, ActionManageCatalog, true},
		{RoleAdmin, ActionManagePosts, true},
		{RoleAdmin, ActionViewAdmin, true},
	}
	for _, tt := range tests {
		if got := Can(tt.role, tt.action); got != tt.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"user", RoleUser},
		{"", RoleGuest},
		{"superuser", RoleUser}, // unknown strings never grant admin
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
