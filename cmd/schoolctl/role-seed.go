package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"school-in-go/pkg/db"
	"school-in-go/pkg/model"
	"school-in-go/pkg/rbac"
	"school-in-go/pkg/server/store"
	gormstore "school-in-go/pkg/server/store/gorm"
)

// roleSeedCmd represents the role seed command
var roleSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the built-in roles",
	Long: `Create the built-in roles if they do not already exist.

Seeded roles:
  super_admin   all permissions
  school_admin  manage users, students, teachers and announcements
  accountant    create, view and collect fees
  teacher       view students and announcements

Existing roles with the same names are left untouched.

Example:
  schoolctl role seed`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := seedRoles(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed roles: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	roleCmd.AddCommand(roleSeedCmd)
}

func builtinRoles() []model.Role {
	return []model.Role{
		{
			Name:        "super_admin",
			Description: "Unrestricted access",
			Permissions: rbac.Wildcard(),
			Active:      true,
		},
		{
			Name:        "school_admin",
			Description: "Day-to-day school administration",
			Permissions: rbac.Permissions{
				Grants: map[string]map[string]bool{
					"users":         {"create": true, "view": true, "edit": true},
					"roles":         {"view": true},
					"students":      {"create": true, "view": true, "edit": true, "delete": true},
					"teachers":      {"create": true, "view": true, "edit": true, "delete": true},
					"fees":          {"view": true},
					"announcements": {"create": true, "view": true, "delete": true},
				},
			},
			Active: true,
		},
		{
			Name:        "accountant",
			Description: "Fee management",
			Permissions: rbac.Permissions{
				Grants: map[string]map[string]bool{
					"students":      {"view": true},
					"fees":          {"create": true, "view": true, "collect": true},
					"announcements": {"view": true},
				},
			},
			Active: true,
		},
		{
			Name:        "teacher",
			Description: "Teaching staff",
			Permissions: rbac.Permissions{
				Grants: map[string]map[string]bool{
					"students":      {"view": true},
					"announcements": {"view": true},
				},
			},
			Active: true,
		},
	}
}

func seedRoles() error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	rolesStore := gormstore.NewRolesStore(database)

	for _, role := range builtinRoles() {
		if _, err := rolesStore.FetchRoleByName(role.Name); err == nil {
			fmt.Printf("Role '%s' already exists, skipping\n", role.Name)
			continue
		} else if !store.IsNotFound(err) {
			return err
		}

		if err := rolesStore.CreateRole(&role); err != nil {
			return fmt.Errorf("failed to create role %q: %w", role.Name, err)
		}
		fmt.Printf("Created role '%s'\n", role.Name)
	}
	return nil
}
