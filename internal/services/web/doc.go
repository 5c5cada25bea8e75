// Package web assembles the browser-facing site shell.
//
// It wires the route table, the page views, the header interaction
// endpoints and the observability middleware into one handler, and runs
// that handler next to an optional metrics listener.
package web
