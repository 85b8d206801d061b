package rbac

import "strings"

// SplitRequirement splits a "resource:action" requirement on the first
// colon. A requirement without a colon has no action part and can only be
// satisfied by a wildcard role.
func SplitRequirement(required string) (resource, action string, ok bool) {
	idx := strings.Index(required, ":")
	if idx < 0 {
		return required, "", false
	}
	return required[:idx], required[idx+1:], true
}

// HasPermission reports whether any of the permission documents grants
// the requirement. Evaluation is an OR across the documents, so order is
// irrelevant. An empty slice denies everything; a deny is a normal
// result, never an error.
func HasPermission(docs []Permissions, required string) bool {
	resource, action, ok := SplitRequirement(required)
	for _, doc := range docs {
		if doc.All {
			return true
		}
		if ok && doc.Allows(resource, action) {
			return true
		}
	}
	return false
}
