// Package policy loads declarative role documents.
//
// A role document is a YAML file describing roles, their permission
// documents and user-role assignments. Loading a document is additive
// and idempotent: roles are created or updated in place, assignments
// are set operations.
//
// Example document:
//
//	roles:
//	  - name: accountant
//	    description: Fee management
//	    permissions:
//	      fees: {collect: true, view: true}
//	  - name: super_admin
//	    permissions:
//	      all: true
//
//	assignments:
//	  - user: admin@example.com
//	    roles: [super_admin]
package policy
