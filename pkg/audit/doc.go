// Package audit provides security audit logging in RFC5424 syslog format.
//
// Logins, permission checks and role changes are logged to stdout and,
// when AUDIT_DATABASE_URL is set, persisted to a dedicated database.
// Set SCHOOL_AUDIT_ENABLED=false to disable.
package audit
