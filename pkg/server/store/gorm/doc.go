// Package gorm provides PostgreSQL-backed implementations of the store
// interfaces using GORM.
package gorm
