package rbac

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// wildcardKey is the document key that grants unconditional access.
const wildcardKey = "all"

// Permissions is a role's permission document. Either All is set, in
// which case every check passes, or Grants maps resource name to action
// name to an allow flag. A missing entry is a deny.
type Permissions struct {
	All    bool
	Grants map[string]map[string]bool
}

// Wildcard returns a document that grants every permission.
func Wildcard() Permissions {
	return Permissions{All: true}
}

// Allows reports whether the document grants the action on the resource.
func (p Permissions) Allows(resource, action string) bool {
	if p.All {
		return true
	}
	actions, ok := p.Grants[resource]
	if !ok {
		return false
	}
	return actions[action]
}

// Validate checks that the document is well-formed. It is called when a
// role is created or updated; documents read back from storage are not
// re-validated (a malformed stored document simply grants nothing).
func (p Permissions) Validate() error {
	if p.All && len(p.Grants) > 0 {
		return errors.New("wildcard permissions cannot carry specific grants")
	}
	for resource, actions := range p.Grants {
		if resource == "" {
			return errors.New("empty resource name")
		}
		if resource == wildcardKey {
			return fmt.Errorf("%q is reserved for the wildcard entry", wildcardKey)
		}
		if len(actions) == 0 {
			return fmt.Errorf("resource %q has no actions", resource)
		}
		for action := range actions {
			if action == "" {
				return fmt.Errorf("resource %q has an empty action name", resource)
			}
		}
	}
	return nil
}

// ParseDocument strictly parses a permissions document as submitted by
// an API caller. Unlike UnmarshalJSON it rejects malformed shapes
// instead of degrading them, so bad documents never reach storage.
func ParseDocument(data []byte) (Permissions, error) {
	if len(data) == 0 || string(data) == "null" {
		return Permissions{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Permissions{}, fmt.Errorf("permissions must be an object: %w", err)
	}

	if flag, ok := raw[wildcardKey]; ok {
		if len(raw) > 1 {
			return Permissions{}, errors.New("wildcard permissions cannot carry specific grants")
		}
		var all bool
		if err := json.Unmarshal(flag, &all); err != nil {
			return Permissions{}, fmt.Errorf("wildcard entry must be a boolean: %w", err)
		}
		if !all {
			return Permissions{}, errors.New("wildcard entry must be true")
		}
		return Wildcard(), nil
	}

	grants := make(map[string]map[string]bool, len(raw))
	for resource, entry := range raw {
		var actions map[string]bool
		if err := json.Unmarshal(entry, &actions); err != nil {
			return Permissions{}, fmt.Errorf("resource %q: actions must map to booleans: %w", resource, err)
		}
		grants[resource] = actions
	}

	doc := Permissions{Grants: grants}
	if err := doc.Validate(); err != nil {
		return Permissions{}, err
	}
	return doc, nil
}

// MarshalJSON renders the wire shape used by the API and the database:
// {"all": true} for the wildcard, otherwise the nested grants object.
func (p Permissions) MarshalJSON() ([]byte, error) {
	if p.All {
		return json.Marshal(map[string]bool{wildcardKey: true})
	}
	if p.Grants == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.Grants)
}

// UnmarshalJSON accepts either the wildcard shape or the nested grants
// object. Anything else leaves the document empty, which grants nothing.
func (p *Permissions) UnmarshalJSON(data []byte) error {
	*p = Permissions{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Malformed documents grant nothing rather than failing reads.
		return nil
	}

	if flag, ok := raw[wildcardKey]; ok {
		var all bool
		if err := json.Unmarshal(flag, &all); err == nil && all {
			p.All = true
			return nil
		}
	}

	grants := make(map[string]map[string]bool, len(raw))
	for resource, entry := range raw {
		var actions map[string]bool
		if err := json.Unmarshal(entry, &actions); err != nil {
			continue
		}
		grants[resource] = actions
	}
	if len(grants) > 0 {
		p.Grants = grants
	}
	return nil
}

// Value implements driver.Valuer so the document can live in a jsonb column.
func (p Permissions) Value() (driver.Value, error) {
	out, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(out), nil
}

// Scan implements sql.Scanner. A NULL or unreadable column yields an
// empty document.
func (p *Permissions) Scan(src interface{}) error {
	*p = Permissions{}
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return p.UnmarshalJSON(v)
	case string:
		return p.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into Permissions", src)
	}
}
