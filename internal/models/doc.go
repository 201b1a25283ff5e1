// Package models defines the storefront records: catalog products, user
// accounts and sessions, cart lines and orders. JSON tags give the shape
// persisted in the key-value store.
package models
