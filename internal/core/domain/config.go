package domain

import "strings"

const (
	// DefaultRoleName is the fallback role when a user has no usable
	// assignment. It must exist in the role table.
	DefaultRoleName = "Guest"

	// LocalUserID is the fixed user identifier in local (non remote-auth)
	// mode.
	LocalUserID = "default"

	// DefaultToolbarColor is used when the config omits one.
	DefaultToolbarColor = "primary"
)

// Role is a named permission set.
type Role struct {
	Description string   `json:"description" yaml:"description"`
	Permissions []string `json:"permissions" yaml:"permissions"`
}

// UserAssignment binds a user identifier to a role name.
type UserAssignment struct {
	Role string `json:"role" yaml:"role"`
}

// Config is the launcher configuration document. It is read fresh per
// request and never mutated.
type Config struct {
	Roles               map[string]Role           `yaml:"roles" validate:"required"`
	Users               map[string]UserAssignment `yaml:"users"`
	NavigationItems     []NavigationItem          `yaml:"navigationItems" validate:"required,dive"`
	DefaultToolbarColor string                    `yaml:"defaultToolbarColor"`
	Keybindings         map[string]string         `yaml:"keybindings"`
	UseRemoteAuth       bool                      `yaml:"useRemoteAuth"`
}

// HasUser reports whether userID has an explicit assignment. User
// identifiers compare case-insensitively.
func (c *Config) HasUser(userID string) bool {
	_, ok := c.Users[strings.ToLower(userID)]
	return ok
}

// RoleFor resolves userID's role name and definition. An unassigned user, or
// an assignment naming an undefined role, falls back to DefaultRoleName. A
// missing default role definition is a fatal configuration error.
func (c *Config) RoleFor(userID string) (string, Role, error) {
	name := DefaultRoleName
	if assignment, ok := c.Users[strings.ToLower(userID)]; ok && assignment.Role != "" {
		name = assignment.Role
	}
	role, ok := c.Roles[name]
	if !ok {
		name = DefaultRoleName
		role, ok = c.Roles[name]
	}
	if !ok {
		return "", Role{}, ErrRoleDefinitionMissing
	}
	return name, role, nil
}

// ToolbarColor returns the configured default theme key, or
// DefaultToolbarColor when unset.
func (c *Config) ToolbarColor() string {
	if c.DefaultToolbarColor == "" {
		return DefaultToolbarColor
	}
	return c.DefaultToolbarColor
}
