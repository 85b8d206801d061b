package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(`
roles:
  - name: accountant
    description: Fee management
    permissions:
      fees: {collect: true, view: true}
  - name: super_admin
    permissions:
      all: true

assignments:
  - user: admin@example.com
    roles: [super_admin]
`))
	require.NoError(t, err)

	require.Len(t, doc.Roles, 2)
	assert.Equal(t, "accountant", doc.Roles[0].Name)
	assert.True(t, doc.Roles[0].Permissions.Allows("fees", "collect"))
	assert.False(t, doc.Roles[0].Permissions.Allows("fees", "cancel"))
	assert.True(t, doc.Roles[1].Permissions.All)

	require.Len(t, doc.Assignments, 1)
	assert.Equal(t, "admin@example.com", doc.Assignments[0].User)
	assert.Equal(t, []string{"super_admin"}, doc.Assignments[0].Roles)
}

func TestParseRejectsMalformedDocuments(t *testing.T) {
	cases := map[string]string{
		"wildcard plus grants": `
roles:
  - name: bad
    permissions:
      all: true
      fees: {view: true}
`,
		"false wildcard": `
roles:
  - name: bad
    permissions:
      all: false
`,
		"non-boolean actions": `
roles:
  - name: bad
    permissions:
      fees: [collect]
`,
		"duplicate role names": `
roles:
  - name: twice
    permissions: {fees: {view: true}}
  - name: twice
    permissions: {fees: {view: true}}
`,
		"assignment without roles": `
assignments:
  - user: someone@example.com
    roles: []
`,
		"unknown top-level key": `
rolez:
  - name: typo
`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}
