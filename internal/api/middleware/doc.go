// Package middleware holds the HTTP middleware mounted by the router:
// trace IDs with request-scoped loggers, Prometheus request metrics, panic
// recovery and the apikey presence check for mutating routes.
package middleware
