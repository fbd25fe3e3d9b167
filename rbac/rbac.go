package rbac

// Role is the principal's access level. Kept as a small closed set rather
// than free-form strings so every check goes through this package.
type Role string

const (
	RoleGuest Role = ""      // unauthenticated
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a stored role string onto the closed set. Anything
// unrecognized is treated as an ordinary user, never silently promoted.
func ParseRole(s string) Role {
	switch s {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleUser):
		return RoleUser
	default:
		if s == "" {
			return RoleGuest
		}
		return RoleUser
	}
}

// Action names a capability the API gates on.
type Action string

const (
	ActionBrowseCatalog Action = "catalog.browse"
	ActionUseCart       Action = "cart.use"
	ActionCheckout      Action = "cart.checkout"
	ActionViewDashboard Action = "dashboard.view"
	ActionShareFiles    Action = "files.share"
	ActionUseAIStudio   Action = "ai.chat"
	ActionManageCatalog Action = "catalog.manage"
	ActionManagePosts   Action = "posts.manage"
	ActionManageTheme   Action = "theme.manage"
	ActionViewAdmin     Action = "admin.view"
)

var capabilities = map[Role]map[Action]bool{
	RoleGuest: {
		ActionBrowseCatalog: true,
		ActionUseAIStudio:   true, // guest tokens, 10-minute window
	},
	RoleUser: {
		ActionBrowseCatalog: true,
		ActionUseCart:       true,
		ActionCheckout:      true,
		ActionViewDashboard: true,
		ActionShareFiles:    true,
		ActionUseAIStudio:   true,
	},
	RoleAdmin: {
		ActionBrowseCatalog: true,
		ActionUseCart:       true,
		ActionCheckout:      true,
		ActionViewDashboard: true,
		ActionShareFiles:    true,
		ActionUseAIStudio:   true,
		ActionManageCatalog: true,
		ActionManagePosts:   true,
		ActionManageTheme:   true,
		ActionViewAdmin:     true,
	},
}

// Can reports whether role may perform action.
func Can(role Role, action Action) bool {
	return capabilities[role][action]
}
