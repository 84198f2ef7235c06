package event

import "testing"

// TestScenarioS6MenuEventDelivery is spec §8 scenario S6: activating a
// menu item produces a MenuEvent carrying that item's id, and the item is
// reachable from the tree it was declared in.
func TestScenarioS6MenuEventDelivery(t *testing.T) {
	menu := &Menu{Items: []MenuItem{
		{ID: "file.new", Label: "New", Enabled: true},
		{ID: "file.open", Label: "Open", Enabled: true},
		{Separator: true},
		{ID: "file.submenu", Label: "Recent", SubMenu: &Menu{Items: []MenuItem{
			{ID: "file.recent.1", Label: "project-a", Enabled: true},
		}}},
	}}

	if err := menu.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	item, ok := menu.Find("file.recent.1")
	if !ok {
		t.Fatalf("Find(file.recent.1) not found in nested submenu")
	}

	ev := MenuEvent{ItemID: item.ID}
	if ev.ItemID != "file.recent.1" {
		t.Fatalf("MenuEvent.ItemID = %q, want file.recent.1", ev.ItemID)
	}
}

func TestMenuValidateRejectsDuplicateIDs(t *testing.T) {
	menu := &Menu{Items: []MenuItem{
		{ID: "a", Label: "A"},
		{ID: "a", Label: "A again"},
	}}
	if err := menu.Validate(); err == nil {
		t.Fatalf("Validate() should reject duplicate ids")
	}
}

func TestMenuValidateRejectsDuplicateAcrossNesting(t *testing.T) {
	menu := &Menu{Items: []MenuItem{
		{ID: "a", Label: "A"},
		{ID: "sub", Label: "Sub", SubMenu: &Menu{Items: []MenuItem{
			{ID: "a", Label: "Nested A"},
		}}},
	}}
	if err := menu.Validate(); err == nil {
		t.Fatalf("Validate() should reject duplicate ids across nesting levels")
	}
}

func TestMenuFindMissingReturnsFalse(t *testing.T) {
	menu := &Menu{Items: []MenuItem{{ID: "a", Label: "A"}}}
	if _, ok := menu.Find("missing"); ok {
		t.Fatalf("Find(missing) should report false")
	}
}
