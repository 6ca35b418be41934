// Package mocks provides testify/mock implementations of the store, auth and
// service interfaces for use in tests.
package mocks
