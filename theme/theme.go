package theme

import (
	"encoding/json"
	"net/http"
	"regexp"

	"devbady/currency"
	"devbady/models"
	"devbady/mq"
	"devbady/store"
	"devbady/utils"

	"github.com/julienschmidt/httprouter"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var supportedCurrencies = []string{currency.USD, currency.INR}

// Handlers serve the site-wide branding singleton. Exactly one ThemeConfig
// exists; it lives in the persisted store and is written back on every
// mutation.
type Handlers struct {
	Store *store.Store
}

func NewHandlers(s *store.Store) *Handlers {
	return &Handlers{Store: s}
}

func (h *Handlers) load() models.ThemeConfig {
	var theme models.ThemeConfig
	h.Store.Get(store.KeyTheme, &theme)
	return theme
}

// GetTheme returns the current branding; public, the SPA reads it at mount.
func (h *Handlers) GetTheme(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.load())
}

// UpdateTheme replaces the branding record; admin only.
func (h *Handlers) UpdateTheme(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var incoming models.ThemeConfig
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if incoming.SiteName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Site name is required")
		return
	}
	if !hexColor.MatchString(incoming.PrimaryColor) {
		utils.RespondWithError(w, http.StatusBadRequest, "Primary color must be a hex color like #2563eb")
		return
	}
	if incoming.SecondaryColor != "" && !hexColor.MatchString(incoming.SecondaryColor) {
		utils.RespondWithError(w, http.StatusBadRequest, "Secondary color must be a hex color")
		return
	}
	if !utils.Contains(supportedCurrencies, incoming.Currency) {
		utils.RespondWithError(w, http.StatusBadRequest, "Currency must be USD or INR")
		return
	}

	h.Store.Set(store.KeyTheme, incoming)
	mq.Emit("theme-updated", mq.Event{UserID: utils.GetUserIDFromRequest(r), Message: "Branding updated"})

	utils.RespondWithJSON(w, http.StatusOK, incoming)
}

// SetCurrency flips only the display currency, the navbar toggle. The rest
// of the branding is left untouched.
func (h *Handlers) SetCurrency(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if !utils.Contains(supportedCurrencies, payload.Currency) {
		utils.RespondWithError(w, http.StatusBadRequest, "Currency must be USD or INR")
		return
	}

	theme := h.load()
	theme.Currency = payload.Currency
	h.Store.Set(store.KeyTheme, theme)

	utils.RespondWithJSON(w, http.StatusOK, theme)
}
