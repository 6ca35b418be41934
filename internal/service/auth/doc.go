// Package auth hashes passwords and issues and validates signed bearer tokens.
package auth
