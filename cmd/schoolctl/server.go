package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"school-in-go/pkg/config"
	"school-in-go/pkg/db"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/endpoints"
	"school-in-go/pkg/server/middleware"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the school application server",
	Long: `Run the school application server.

To run the server requires the environment variables SCHOOL_JWT_SECRET and
DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		jwtSecret, ok := os.LookupEnv("SCHOOL_JWT_SECRET")
		if !ok || jwtSecret == "" {
			fmt.Fprintln(os.Stderr, "SCHOOL_JWT_SECRET environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		jwtAuth := middleware.NewJWTAuthenticator([]byte(jwtSecret), cfg.TokenTTL())

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, jwtAuth, host, port)

		endpoints.RegisterAll(s)

		// Pick up config file edits without a restart. Bind address and
		// port stay fixed for the life of the process.
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			_ = config.Watch(stop, func(cfg *config.SchoolConfig) {
				log.Println("Configuration reloaded")
			})
		}()

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	cfg := config.Get()
	serverCmd.Flags().StringP("port", "p", strconv.Itoa(cfg.ListenPort), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", cfg.ListenHost, "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
