// Package api exposes the diagram linter over HTTP.
//
// # Endpoints
//
//	POST /api/v1/lint   lint a raw diagram XML body, returns findings JSON
//	GET  /api/v1/rules  list the registered rules
//	GET  /health        liveness probe
//	GET  /metrics       Prometheus metrics
//
// Lint results are cached by content hash, so re-posting an unchanged
// document is cheap. The linter itself is stateless; the cache is the
// only mutable state the server holds.
package api
