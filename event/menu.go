package event

import "fmt"

// MenuItem is one entry in a Menu tree: either a leaf (Separator == false,
// SubMenu == nil), a separator, or a submenu. ID must be unique across the
// whole tree rooted at the Menu that contains it (see Menu.Validate).
type MenuItem struct {
	ID        string
	Label     string
	Shortcut  string
	Enabled   bool
	Separator bool
	SubMenu   *Menu
}

// Menu is an ordered list of MenuItems, the shape a backend's menu bar (or
// a context menu) renders. Neither backend currently renders it: both
// record the Menu passed to SetMenuBar, report MenuBar: false, and never
// surface a MenuEvent for it on their own.
type Menu struct {
	Items []MenuItem
}

// Validate walks the tree and reports the first duplicate id found. Every
// id in a Menu tree must be unique, regardless of nesting depth (spec §3).
func (m *Menu) Validate() error {
	seen := make(map[string]bool)
	var walk func(*Menu) error
	walk = func(menu *Menu) error {
		for _, item := range menu.Items {
			if item.Separator {
				continue
			}
			if item.ID == "" {
				return fmt.Errorf("event: menu item %q has empty id", item.Label)
			}
			if seen[item.ID] {
				return fmt.Errorf("event: duplicate menu item id %q", item.ID)
			}
			seen[item.ID] = true
			if item.SubMenu != nil {
				if err := walk(item.SubMenu); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(m)
}

// Find locates a menu item by id anywhere in the tree.
func (m *Menu) Find(id string) (MenuItem, bool) {
	var result MenuItem
	found := false
	var walk func(*Menu)
	walk = func(menu *Menu) {
		if found {
			return
		}
		for _, item := range menu.Items {
			if found {
				return
			}
			if !item.Separator && item.ID == id {
				result, found = item, true
				return
			}
			if item.SubMenu != nil {
				walk(item.SubMenu)
			}
		}
	}
	walk(m)
	return result, found
}
