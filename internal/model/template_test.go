package model

import "testing"

func TestTemplateStoreAddFindRemove(t *testing.T) {
	store := NewTemplateStore()
	tpl := NewShipmentTemplate("Weekly Order", "restock shipment",
		[]ItemRequest{{Label: "Widget", Width: 10, Length: 10, Height: 10, Weight: 500, Quantity: 3}},
		"Generic", DefaultMaxWeightGrams)

	store.Add(tpl)
	if len(store.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(store.Templates))
	}

	found := store.FindByID(tpl.ID)
	if found == nil || found.Name != "Weekly Order" {
		t.Fatalf("expected to find template by ID, got %+v", found)
	}

	if byName := store.FindByName("Weekly Order"); byName == nil {
		t.Fatal("expected to find template by name")
	}

	if !store.Remove(tpl.ID) {
		t.Fatal("expected Remove to report success")
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected 0 templates after removal, got %d", len(store.Templates))
	}
}

func TestInventoryDefaults(t *testing.T) {
	inv := DefaultInventory()
	if len(inv.Boxes) == 0 {
		t.Error("expected default inventory to have box presets")
	}
	if len(inv.WeightCaps) == 0 {
		t.Error("expected default inventory to have weight-cap presets")
	}

	b := inv.Boxes[0]
	if found := inv.FindBoxByID(b.ID); found == nil {
		t.Error("expected FindBoxByID to find the first box")
	}
	if found := inv.FindBoxByName(b.Name); found == nil {
		t.Error("expected FindBoxByName to find the first box")
	}
}
