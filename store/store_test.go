package store

import (
	"encoding/json"
	"errors"
	"testing"

	"devbady/models"
)

func TestRoundTrip(t *testing.T) {
	s := New(NewMemoryBackend())

	in := []models.CartItem{
		{ProductID: "1", Name: "React Enterprise Starter", Price: 49.99, Quantity: 2},
	}
	s.Set(CartKey("u1"), in)

	var out []models.CartItem
	s.Get(CartKey("u1"), &out)

	if len(out) != 1 || out[0].ProductID != "1" || out[0].Quantity != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestMissingKeyReturnsDefault(t *testing.T) {
	s := New(NewMemoryBackend())
	RegisterSeeds(s)

	var products []models.Product
	s.Get(KeyProducts, &products)

	if len(products) != 2 {
		t.Fatalf("expected 2 seed products, got %d", len(products))
	}
	if products[0].Name != "React Enterprise Starter" {
		t.Errorf("unexpected seed product: %q", products[0].Name)
	}

	var theme models.ThemeConfig
	s.Get(KeyTheme, &theme)
	if theme.SiteName != "clodecode.in" || theme.Currency != "USD" {
		t.Errorf("unexpected default theme: %+v", theme)
	}
}

func TestMissingKeyWithoutDefaultLeavesZeroValue(t *testing.T) {
	s := New(NewMemoryBackend())

	var items []models.CartItem
	s.Get(CartKey("nobody"), &items)
	if items != nil {
		t.Fatalf("expected nil cart, got %+v", items)
	}
}

func TestVersionMismatchDiscardsPayload(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)
	RegisterSeeds(s)

	// Persist an old-schema envelope directly.
	stale, _ := json.Marshal(map[string]any{
		"v":    1,
		"data": []models.Product{{ProductID: "stale", Name: "Old Seed", Price: 1}},
	})
	if err := backend.SetItem(KeyProducts, string(stale)); err != nil {
		t.Fatal(err)
	}

	var products []models.Product
	s.Get(KeyProducts, &products)
	if len(products) != 2 || products[0].ProductID == "stale" {
		t.Fatalf("stale payload should have been discarded, got %+v", products)
	}

	// The stale key must be gone so it cannot mask future defaults.
	if _, err := backend.GetItem(KeyProducts); err != ErrNotFound {
		t.Errorf("expected stale key removed, got err=%v", err)
	}
}

func TestCorruptPayloadFallsBackToDefault(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)
	RegisterSeeds(s)

	if err := backend.SetItem(KeyTheme, "{not json"); err != nil {
		t.Fatal(err)
	}

	var theme models.ThemeConfig
	s.Get(KeyTheme, &theme)
	if theme.PrimaryColor != "#2563eb" {
		t.Fatalf("expected default theme after corrupt payload, got %+v", theme)
	}
}

// failingBackend rejects every operation, standing in for disabled storage.
type failingBackend struct{}

var errBackendDown = errors.New("backend down")

func (failingBackend) GetItem(string) (string, error) { return "", errBackendDown }
func (failingBackend) SetItem(string, string) error   { return errBackendDown }
func (failingBackend) RemoveItem(string) error        { return errBackendDown }

func TestDisabledBackendDegradesToSessionMemory(t *testing.T) {
	s := New(failingBackend{})
	RegisterSeeds(s)

	// Writes must not panic or error; the value survives in the mirror.
	s.Set(CartKey("u1"), []models.CartItem{{ProductID: "9", Quantity: 1, Price: 5}})

	var items []models.CartItem
	s.Get(CartKey("u1"), &items)
	if len(items) != 1 || items[0].ProductID != "9" {
		t.Fatalf("expected mirrored cart, got %+v", items)
	}

	// Unwritten keys still resolve to defaults.
	var theme models.ThemeConfig
	s.Get(KeyTheme, &theme)
	if theme.SiteName != "clodecode.in" {
		t.Fatalf("expected default theme, got %+v", theme)
	}
}
