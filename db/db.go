package db

import "embed"

// Migrations holds the SQL migration files, embedded so production
// builds do not depend on the source tree being present.
//
//go:embed migrations/*.sql
var Migrations embed.FS
