// Package storage declares persistence contracts for the project gallery.
package storage
