package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"school-in-go/pkg/db"
	"school-in-go/pkg/policy"
	gormstore "school-in-go/pkg/server/store/gorm"
)

// roleLoadCmd represents the role load command
var roleLoadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load a role document",
	Long: `Load a YAML role document.

The document declares roles with their permission documents, and
user-role assignments. Loading is additive and idempotent: roles are
created or updated by name, and assigning an already-held role is a
no-op.

Example:
  schoolctl role load roles.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := loadRoleDocument(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load role document: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	roleCmd.AddCommand(roleLoadCmd)
}

func loadRoleDocument(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	doc, err := policy.Parse(file)
	if err != nil {
		return err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	loader := policy.NewLoader(
		gormstore.NewRolesStore(database),
		gormstore.NewUsersStore(database),
	)
	summary, err := loader.Load(doc)
	if err != nil {
		return err
	}

	fmt.Printf("Roles created: %d, updated: %d, assignments applied: %d\n",
		summary.RolesCreated, summary.RolesUpdated, summary.RolesAssigned)
	return nil
}
