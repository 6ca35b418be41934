// Package store defines the persistence interfaces for users and products,
// the errors every implementation returns, and a helper for running several
// statements inside one database transaction.
package store
