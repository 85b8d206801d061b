// Package main implements schoolctl, the CLI for the school management server.
//
// The server is a multi-tenant school management backend with role-based
// access control: users hold roles, roles carry permission documents, and
// every API operation is gated on a "resource:action" check.
//
// # Quick Start
//
//	# Run database migrations
//	schoolctl db migrate
//
//	# Seed the built-in roles (super_admin, school_admin, accountant, teacher)
//	schoolctl role seed
//
//	# Create the first administrator
//	schoolctl user create --email admin@example.com --username admin --role super_admin
//
//	# Start the server
//	schoolctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - SCHOOL_JWT_SECRET: Secret used to sign login tokens
//   - SCHOOL_LISTEN_HOST / SCHOOL_LISTEN_PORT: Server bind address
//   - SCHOOL_LOG_LEVEL: Set to "debug" for SQL query logging
package main
