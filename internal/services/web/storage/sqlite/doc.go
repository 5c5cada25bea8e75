// Package sqlite implements gallery persistence on SQLite.
package sqlite
