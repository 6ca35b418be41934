// Package api implements the HTTP handlers for the storefront: account
// registration and login, user administration and the product catalogue.
//
// Every response body is a shared.Envelope. Handlers decode and validate the
// request, call one service method and translate its error with
// HandleAPIError; raw error text never reaches the client.
package api
