// Package rbac implements role-based permission evaluation.
//
// A role carries a permissions document mapping resource names to the
// actions it may perform on them, or a wildcard granting everything.
// Evaluation is a pure function over the role set: it ORs the grants of
// every role, so the most permissive role wins. Persistence lookups are
// the caller's responsibility; this package never touches storage.
package rbac
