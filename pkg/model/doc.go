// Package model defines the database models for the school service.
//
// This package contains GORM models that map to the PostgreSQL schema
// managed by the migrations in db/migrations.
//
// # Core Models
//
//   - School: a tenant; every student and teacher belongs to one
//   - User: an account with credentials and an optional school affiliation
//   - Role: a named permission bundle (permissions live in a jsonb column)
//   - UserRole: the user/role join table, keyed by (user_id, role_id)
//   - Student, Teacher: per-school records
//   - FeeRecord: a fee charged to a student
//   - Announcement: a markdown notice, school-scoped or global
package model
