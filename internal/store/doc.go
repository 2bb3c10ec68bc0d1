// Package store defines the persistence interfaces for users and tasks
// and the sentinel errors their implementations return. Handlers depend
// on these interfaces only, keeping the HTTP layer independent of the
// backing database.
package store
