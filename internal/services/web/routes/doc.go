// Package routes owns the page route table and the switcher that serves it.
//
// The table is a fixed set of (name, path) entries matched exactly. The
// switcher resolves a request to one entry, asks that entry's page for its
// view, and hands the view to a renderer that wraps it with the site header.
// Paths outside the table redirect to the not-found entry.
package routes
