// Package store defines the persistence interfaces for the application's
// entities along with the shared error taxonomy and transaction helpers.
// Concrete implementations live under internal/platform/postgres.
package store
