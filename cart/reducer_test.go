package cart

import (
	"reflect"
	"testing"

	"devbady/models"
)

func sampleProduct(id string, price float64) models.Product {
	return models.Product{
		ProductID: id,
		Name:      "Product " + id,
		Price:     price,
		Category:  "Templates",
	}
}

func TestAddMergesInsteadOfDuplicating(t *testing.T) {
	p := sampleProduct("1", 49.99)

	items := Add(Add([]models.CartItem{}, p), p)

	if len(items) != 1 {
		t.Fatalf("expected 1 line after double add, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddPreservesOrderOfUntouchedLines(t *testing.T) {
	a, b, c := sampleProduct("a", 1), sampleProduct("b", 2), sampleProduct("c", 3)

	items := Add(Add(Add([]models.CartItem{}, a), b), c)
	items = Add(items, b) // merge into the middle line

	ids := []string{items[0].ProductID, items[1].ProductID, items[2].ProductID}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Errorf("order changed after merge: %v", ids)
	}
	if items[1].Quantity != 2 {
		t.Errorf("expected middle line quantity 2, got %d", items[1].Quantity)
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	p := sampleProduct("1", 10)
	original := Add([]models.CartItem{}, p)

	_ = Add(original, p)

	if original[0].Quantity != 1 {
		t.Errorf("input slice mutated: quantity became %d", original[0].Quantity)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	items := Add([]models.CartItem{}, sampleProduct("1", 10))

	got := Remove(items, "does-not-exist")

	if !reflect.DeepEqual(got, items) {
		t.Errorf("removing unknown id changed the cart: %+v", got)
	}
}

func TestRemoveDropsOnlyMatchingLine(t *testing.T) {
	items := Add(Add([]models.CartItem{}, sampleProduct("1", 10)), sampleProduct("2", 20))

	got := Remove(items, "1")

	if len(got) != 1 || got[0].ProductID != "2" {
		t.Fatalf("unexpected cart after remove: %+v", got)
	}
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		items := Add([]models.CartItem{}, sampleProduct("1", 10))
		got := UpdateQuantity(items, "1", n)
		if got[0].Quantity != 1 {
			t.Errorf("UpdateQuantity(%d): expected clamp to 1, got %d", n, got[0].Quantity)
		}
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	items := Add([]models.CartItem{}, sampleProduct("1", 10))

	got := UpdateQuantity(items, "1", 7)

	if got[0].Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", got[0].Quantity)
	}
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	items := Add([]models.CartItem{}, sampleProduct("1", 10))

	got := UpdateQuantity(items, "nope", 5)

	if !reflect.DeepEqual(got, items) {
		t.Errorf("updating unknown id changed the cart: %+v", got)
	}
}

func TestClearThenTotalIsZero(t *testing.T) {
	items := Add(Add([]models.CartItem{}, sampleProduct("1", 49.99)), sampleProduct("2", 29.99))

	cleared := Clear(items)

	if len(cleared) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cleared))
	}
	if total := Total(cleared); total != 0 {
		t.Errorf("expected total 0, got %f", total)
	}
}

func TestTotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "1", Price: 49.99, Quantity: 2},
		{ProductID: "2", Price: 29.99, Quantity: 1},
	}

	want := 49.99*2 + 29.99
	if got := Total(items); got != want {
		t.Errorf("Total = %f, want %f", got, want)
	}
	if Total(nil) != 0 {
		t.Error("Total(nil) should be 0")
	}
}

func TestCount(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "1", Quantity: 2},
		{ProductID: "2", Quantity: 3},
	}
	if got := Count(items); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}
