// Package http implements the HTTP transport of the reference Pass server.
//
// It exposes route wiring, request handlers, and middleware for the wire
// protocol the sync clients speak. Cross-cutting concerns such as request
// tracing, access logging, metrics, CORS, per-IP rate limiting, response
// compression, and admin authentication are handled in this package before
// requests are delegated to the service layer.
package http
