// Package store defines the storage interfaces consumed by the HTTP
// endpoints. The gorm subpackage provides the PostgreSQL-backed
// implementations; tests substitute mocks.
package store
