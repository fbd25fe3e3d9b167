package store

import "devbady/models"

// Storage keys. Cart keys are per user; everything else is a singleton.
const (
	KeyProducts = "clodecode_products"
	KeyTheme    = "clodecode_theme"
	cartPrefix  = "clodecode_cart:"
)

func CartKey(userID string) string {
	return cartPrefix + userID
}

// DefaultProducts is the seed catalog served until an admin edits it.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ProductID:   "1",
			Name:        "React Enterprise Starter",
			Description: "A robust boilerplate for large-scale React applications with pre-configured CI/CD.",
			Price:       49.99,
			Category:    "Templates",
			Image:       "https://images.unsplash.com/photo-1633356122544-f134324a6cee?auto=format&fit=crop&q=80&w=400",
		},
		{
			ProductID:   "2",
			Name:        "NodeJS Auth Shield",
			Description: "Complete authentication middleware for Express with JWT, OAuth, and 2FA support.",
			Price:       29.99,
			Category:    "Plugins",
			Image:       "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&q=80&w=400",
		},
	}
}

func DefaultTheme() models.ThemeConfig {
	return models.ThemeConfig{
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#0f172a",
		IsDarkMode:     false,
		SiteName:       "clodecode.in",
		Currency:       "USD",
	}
}

// RegisterSeeds wires the default catalog and theme into a store. Carts
// have no default: a missing cart is simply empty.
func RegisterSeeds(s *Store) {
	s.RegisterDefault(KeyProducts, DefaultProducts())
	s.RegisterDefault(KeyTheme, DefaultTheme())
}
