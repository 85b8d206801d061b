// Package config provides configuration management for the school server.
//
// Configuration is loaded from an optional YAML file and overridden by
// environment variables.
//
// # Configuration Sources
//
//   - school.yml in SCHOOL_CONFIG_PATH (or /etc/school/config)
//   - SCHOOL_* environment variables (take precedence)
//
// # Key Configuration Options
//
//   - SCHOOL_LISTEN_HOST / SCHOOL_LISTEN_PORT: Server bind address
//   - SCHOOL_TOKEN_TTL_MINUTES: Login token lifetime
//   - SCHOOL_API_LIST_LIMIT_MAX: Cap on listing page sizes
//   - DATABASE_URL: Database connection
//   - SCHOOL_JWT_SECRET: Token signing secret
package config
