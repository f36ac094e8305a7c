// Package testdb provides utilities specifically for database testing.
// Tests that need PostgreSQL call GetTestDBWithT, which skips the test when no
// database URL is configured, applies the embedded migrations once per
// process, and hands back a pool; WithTx then isolates each test inside a
// transaction that is always rolled back.
package testdb
