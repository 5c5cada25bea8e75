// Package observability holds request logging, metrics and tracing
// middleware for the web service.
package observability
