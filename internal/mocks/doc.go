// Package mocks provides hand-written test doubles for the store and service
// interfaces. Each mock exposes Fn fields that override its default behavior.
package mocks
