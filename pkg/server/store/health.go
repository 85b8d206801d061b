package store

// HealthStore abstracts the database liveness check.
type HealthStore interface {
	// Ping verifies the database connection is usable.
	Ping() error
}
