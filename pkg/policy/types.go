package policy

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"school-in-go/pkg/rbac"
)

// Document is a parsed role document.
type Document struct {
	Roles       []RoleDef    `yaml:"roles"`
	Assignments []Assignment `yaml:"assignments"`
}

// RoleDef declares a role and its permission document.
type RoleDef struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Permissions PermissionsDoc `yaml:"permissions"`
}

// Assignment grants roles to a user, referenced by email or username.
type Assignment struct {
	User  string   `yaml:"user"`
	Roles []string `yaml:"roles"`
}

// PermissionsDoc wraps rbac.Permissions with YAML decoding. The YAML
// shape mirrors the API wire shape: either {all: true} or a nested
// resource/action mapping.
type PermissionsDoc struct {
	rbac.Permissions
}

func (p *PermissionsDoc) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("permissions must be a mapping: %w", err)
	}

	if flag, ok := raw["all"]; ok {
		var all bool
		if err := flag.Decode(&all); err != nil {
			return fmt.Errorf("wildcard entry must be a boolean: %w", err)
		}
		if !all {
			return fmt.Errorf("wildcard entry must be true")
		}
		if len(raw) > 1 {
			return fmt.Errorf("wildcard permissions cannot carry specific grants")
		}
		p.Permissions = rbac.Wildcard()
		return nil
	}

	grants := make(map[string]map[string]bool, len(raw))
	for resource, entry := range raw {
		var actions map[string]bool
		if err := entry.Decode(&actions); err != nil {
			return fmt.Errorf("resource %q: actions must map to booleans: %w", resource, err)
		}
		grants[resource] = actions
	}

	p.Permissions = rbac.Permissions{Grants: grants}
	return p.Permissions.Validate()
}

// Validate checks the document for structural problems before loading.
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Roles))
	for _, role := range d.Roles {
		if role.Name == "" {
			return fmt.Errorf("role with empty name")
		}
		if seen[role.Name] {
			return fmt.Errorf("duplicate role %q", role.Name)
		}
		seen[role.Name] = true
	}

	for _, assignment := range d.Assignments {
		if assignment.User == "" {
			return fmt.Errorf("assignment with empty user")
		}
		if len(assignment.Roles) == 0 {
			return fmt.Errorf("assignment for %q names no roles", assignment.User)
		}
	}
	return nil
}
