// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx stdlib driver.
//
// Deleting a user or product renumbers every row with a higher id so the ids
// stay contiguous. The delete, the renumbering and the sequence reset share a
// single transaction that holds a table lock, so concurrent deletes on the
// same table are serialized.
package postgres
