package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"school-in-go/pkg/db"
	"school-in-go/pkg/model"
	gormstore "school-in-go/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Long: `Create a user account.

If no password is provided, a random one is generated and printed to STDOUT.
Use --role to assign a role by name in the same step, for example to bootstrap
the first administrator:

Example:
  schoolctl user create --email admin@example.com --username admin --role super_admin`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		roleName, _ := cmd.Flags().GetString("role")

		if email == "" || username == "" {
			fmt.Fprintln(os.Stderr, "--email and --username are required")
			os.Exit(1)
		}

		generated, err := createUser(email, username, password, roleName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s'\n", username)
		if generated != "" {
			fmt.Printf("Password for %s: %s\n", username, generated)
		}
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().StringP("email", "e", "", "Email address (required)")
	userCreateCmd.Flags().StringP("username", "u", "", "Username (required)")
	userCreateCmd.Flags().StringP("password", "w", "", "Password (default: generated)")
	userCreateCmd.Flags().StringP("role", "r", "", "Role name to assign to the new user")
}

// createUser creates the account and optionally assigns a role. The
// returned string is the generated password, empty if one was supplied.
func createUser(email, username, password, roleName string) (string, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	var generated string
	if password == "" {
		raw := make([]byte, 12)
		if _, err := rand.Read(raw); err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		generated = base64.URLEncoding.EncodeToString(raw)
		password = generated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Active:       true,
	}

	usersStore := gormstore.NewUsersStore(database)
	if err := usersStore.CreateUser(&user); err != nil {
		return "", err
	}

	if roleName != "" {
		rolesStore := gormstore.NewRolesStore(database)
		role, err := rolesStore.FetchRoleByName(roleName)
		if err != nil {
			return "", fmt.Errorf("role %q: %w", roleName, err)
		}
		if _, err := rolesStore.AssignRole(user.ID, role.ID); err != nil {
			return "", fmt.Errorf("failed to assign role %q: %w", roleName, err)
		}
	}

	return generated, nil
}
