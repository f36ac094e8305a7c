// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, so the service layer stays independent
// of PostgreSQL and can be exercised against in-memory doubles in tests.
package store
