package domain

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// WildcardPermission grants access to every navigation entry.
const WildcardPermission = "*"

// AppLink is a single navigable application entry.
type AppLink struct {
	ID              string `json:"id" yaml:"id" validate:"required"`
	Title           string `json:"title" yaml:"title" validate:"required"`
	Icon            string `json:"icon" yaml:"icon"`
	URL             string `json:"url" yaml:"url" validate:"required"`
	IntegrationType string `json:"type,omitempty" yaml:"type,omitempty"`
	ToolbarColor    string `json:"toolbarColor,omitempty" yaml:"toolbarColor,omitempty"`
	Autoload        bool   `json:"autoload,omitempty" yaml:"autoload,omitempty"`
}

// Category groups AppLinks behind a shared permission gate.
type Category struct {
	ID           string    `json:"id" yaml:"id" validate:"required"`
	Title        string    `json:"title" yaml:"title" validate:"required"`
	Icon         string    `json:"icon" yaml:"icon"`
	Apps         []AppLink `json:"apps" yaml:"apps" validate:"dive"`
	ToolbarColor string    `json:"toolbarColor,omitempty" yaml:"toolbarColor,omitempty"`
}

// NavigationItem is a tagged union: exactly one of AppLink or Category is
// set. The wire discriminator is the presence of an "apps" list.
type NavigationItem struct {
	AppLink  *AppLink
	Category *Category
}

var errEmptyNavigationItem = errors.New("navigation item has no variant set")

func (n *NavigationItem) UnmarshalYAML(value *yaml.Node) error {
	var probe struct {
		Apps []yaml.Node `yaml:"apps"`
	}
	if err := value.Decode(&probe); err != nil {
		return err
	}
	if probe.Apps != nil {
		var c Category
		if err := value.Decode(&c); err != nil {
			return err
		}
		n.Category = &c
		n.AppLink = nil
		return nil
	}
	var a AppLink
	if err := value.Decode(&a); err != nil {
		return err
	}
	n.AppLink = &a
	n.Category = nil
	return nil
}

func (n NavigationItem) MarshalYAML() (any, error) {
	switch {
	case n.Category != nil:
		return n.Category, nil
	case n.AppLink != nil:
		return n.AppLink, nil
	}
	return nil, errEmptyNavigationItem
}

func (n *NavigationItem) UnmarshalJSON(data []byte) error {
	var probe struct {
		Apps json.RawMessage `json:"apps"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Apps != nil {
		var c Category
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		n.Category = &c
		n.AppLink = nil
		return nil
	}
	var a AppLink
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	n.AppLink = &a
	n.Category = nil
	return nil
}

func (n NavigationItem) MarshalJSON() ([]byte, error) {
	switch {
	case n.Category != nil:
		return json.Marshal(n.Category)
	case n.AppLink != nil:
		return json.Marshal(n.AppLink)
	}
	return nil, errEmptyNavigationItem
}

// ID returns the identifier of whichever variant is set.
func (n NavigationItem) ID() string {
	switch {
	case n.Category != nil:
		return n.Category.ID
	case n.AppLink != nil:
		return n.AppLink.ID
	}
	return ""
}

// FindAppLink locates an AppLink by ID, searching top-level entries and
// every category's app list.
func FindAppLink(items []NavigationItem, appID string) (AppLink, bool) {
	for _, item := range items {
		switch {
		case item.AppLink != nil:
			if item.AppLink.ID == appID {
				return *item.AppLink, true
			}
		case item.Category != nil:
			for _, app := range item.Category.Apps {
				if app.ID == appID {
					return app, true
				}
			}
		}
	}
	return AppLink{}, false
}

// PermissionSet is the set of entry IDs a role may access.
type PermissionSet map[string]struct{}

// NewPermissionSet builds a PermissionSet from a role's permission list.
func NewPermissionSet(ids []string) PermissionSet {
	set := make(PermissionSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Allows reports whether the set grants access to id, either directly or
// through the wildcard.
func (p PermissionSet) Allows(id string) bool {
	if _, ok := p[WildcardPermission]; ok {
		return true
	}
	_, ok := p[id]
	return ok
}

// FilterNavigation returns the subset of the navigation tree the permission
// set grants, preserving document order. A top-level AppLink survives when
// its own ID is allowed. A category's child survives when the child ID or
// the category ID is allowed; a category with no surviving children is
// omitted entirely, even when its own ID is permitted.
func FilterNavigation(items []NavigationItem, perms PermissionSet) []NavigationItem {
	out := make([]NavigationItem, 0, len(items))
	for _, item := range items {
		switch {
		case item.AppLink != nil:
			if perms.Allows(item.AppLink.ID) {
				out = append(out, item)
			}
		case item.Category != nil:
			categoryAccessible := perms.Allows(item.Category.ID)
			kept := make([]AppLink, 0, len(item.Category.Apps))
			for _, app := range item.Category.Apps {
				if categoryAccessible || perms.Allows(app.ID) {
					kept = append(kept, app)
				}
			}
			if len(kept) > 0 {
				filtered := *item.Category
				filtered.Apps = kept
				out = append(out, NavigationItem{Category: &filtered})
			}
		}
	}
	return out
}
