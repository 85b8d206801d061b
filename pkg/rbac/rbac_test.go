package rbac

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPermission(t *testing.T) {
	students := Permissions{Grants: map[string]map[string]bool{
		"students": {"view": true},
	}}
	feesCollect := Permissions{Grants: map[string]map[string]bool{
		"fees": {"collect": true},
	}}
	feesView := Permissions{Grants: map[string]map[string]bool{
		"fees": {"view": true},
	}}

	t.Run("empty role set denies everything", func(t *testing.T) {
		assert.False(t, HasPermission(nil, "students:view"))
		assert.False(t, HasPermission([]Permissions{}, "anything:at-all"))
	})

	t.Run("wildcard allows any requirement", func(t *testing.T) {
		docs := []Permissions{Wildcard()}
		assert.True(t, HasPermission(docs, "students:view"))
		assert.True(t, HasPermission(docs, "no-such-resource:no-such-action"))
		assert.True(t, HasPermission(docs, "malformed-no-colon"))
		assert.True(t, HasPermission(docs, ""))
	})

	t.Run("specific grant allows exactly its pair", func(t *testing.T) {
		docs := []Permissions{students}
		assert.True(t, HasPermission(docs, "students:view"))
		assert.False(t, HasPermission(docs, "students:edit"))
		assert.False(t, HasPermission(docs, "teachers:view"))
	})

	t.Run("requirement without colon only matches wildcard", func(t *testing.T) {
		assert.False(t, HasPermission([]Permissions{students}, "students"))
		assert.True(t, HasPermission([]Permissions{Wildcard()}, "students"))
	})

	t.Run("grants OR across roles", func(t *testing.T) {
		docs := []Permissions{feesCollect, feesView}
		assert.True(t, HasPermission(docs, "fees:collect"))
		assert.True(t, HasPermission(docs, "fees:view"))
		assert.False(t, HasPermission(docs, "fees:cancel"))

		// Order must not affect the result.
		reversed := []Permissions{feesView, feesCollect}
		assert.True(t, HasPermission(reversed, "fees:collect"))
		assert.False(t, HasPermission(reversed, "fees:cancel"))
	})

	t.Run("empty document grants nothing", func(t *testing.T) {
		docs := []Permissions{{}, students}
		assert.True(t, HasPermission(docs, "students:view"))
		assert.False(t, HasPermission(docs, "fees:view"))
	})

	t.Run("false entries do not grant", func(t *testing.T) {
		docs := []Permissions{{Grants: map[string]map[string]bool{
			"students": {"view": false},
		}}}
		assert.False(t, HasPermission(docs, "students:view"))
	})
}

func TestSplitRequirement(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		resource string
		action   string
		ok       bool
	}{
		{"simple", "students:view", "students", "view", true},
		{"splits on first colon only", "a:b:c", "a", "b:c", true},
		{"no colon", "students", "students", "", false},
		{"empty", "", "", "", false},
		{"empty action", "students:", "students", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource, action, ok := SplitRequirement(tt.input)
			assert.Equal(t, tt.resource, resource)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestPermissionsValidate(t *testing.T) {
	t.Run("wildcard alone is valid", func(t *testing.T) {
		assert.NoError(t, Wildcard().Validate())
	})

	t.Run("nested grants are valid", func(t *testing.T) {
		p := Permissions{Grants: map[string]map[string]bool{
			"students": {"view": true, "edit": false},
		}}
		assert.NoError(t, p.Validate())
	})

	t.Run("wildcard plus grants is rejected", func(t *testing.T) {
		p := Permissions{All: true, Grants: map[string]map[string]bool{
			"students": {"view": true},
		}}
		assert.Error(t, p.Validate())
	})

	t.Run("reserved resource name is rejected", func(t *testing.T) {
		p := Permissions{Grants: map[string]map[string]bool{
			"all": {"view": true},
		}}
		assert.Error(t, p.Validate())
	})

	t.Run("empty action set is rejected", func(t *testing.T) {
		p := Permissions{Grants: map[string]map[string]bool{
			"students": {},
		}}
		assert.Error(t, p.Validate())
	})
}

func TestPermissionsJSON(t *testing.T) {
	t.Run("wildcard round-trips", func(t *testing.T) {
		out, err := json.Marshal(Wildcard())
		require.NoError(t, err)
		assert.JSONEq(t, `{"all": true}`, string(out))

		var p Permissions
		require.NoError(t, json.Unmarshal(out, &p))
		assert.True(t, p.All)
	})

	t.Run("grants round-trip", func(t *testing.T) {
		p := Permissions{Grants: map[string]map[string]bool{
			"fees": {"collect": true},
		}}
		out, err := json.Marshal(p)
		require.NoError(t, err)

		var got Permissions
		require.NoError(t, json.Unmarshal(out, &got))
		assert.True(t, got.Allows("fees", "collect"))
		assert.False(t, got.Allows("fees", "cancel"))
	})

	t.Run("malformed document grants nothing", func(t *testing.T) {
		var p Permissions
		require.NoError(t, json.Unmarshal([]byte(`"not an object"`), &p))
		assert.False(t, p.All)
		assert.False(t, p.Allows("students", "view"))
	})

	t.Run("partially malformed entries are skipped", func(t *testing.T) {
		var p Permissions
		raw := `{"students": {"view": true}, "broken": 42}`
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		assert.True(t, p.Allows("students", "view"))
		assert.False(t, p.Allows("broken", "anything"))
	})

	t.Run("scan handles nil and bytes", func(t *testing.T) {
		var p Permissions
		require.NoError(t, p.Scan(nil))
		assert.False(t, p.All)

		require.NoError(t, p.Scan([]byte(`{"all": true}`)))
		assert.True(t, p.All)
	})
}
