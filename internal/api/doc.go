// Package api handles the todo HTTP endpoints: path and query parsing,
// request body validation, and translation of service results and errors
// into JSON responses. Routes are mounted by cmd/server.
package api
