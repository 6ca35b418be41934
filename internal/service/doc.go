// Package service implements the application use cases: registration and
// login, user administration and the product catalogue. Services depend on
// the store interfaces and the auth package, never on a concrete database.
package service
