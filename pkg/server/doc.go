// Package server wires the HTTP router, middleware and stores together.
package server
