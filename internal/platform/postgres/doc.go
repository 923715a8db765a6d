// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store. All implementations accept a
// store.DBTX so they operate identically on a connection or a transaction.
package postgres
