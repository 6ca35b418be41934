// Package domain defines the core business entities of the storefront
// (users, products, token identities) together with their validation rules
// and the errors those rules produce.
package domain
