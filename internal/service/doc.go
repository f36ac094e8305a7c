// Package service contains the application-specific use cases. It
// orchestrates interactions between domain objects and the persistence
// interfaces defined in internal/store to fulfill application features.
//
// Key components:
//
// 1. Service interfaces:
//   - TodoService defines the operations available to the delivery mechanism (the HTTP API)
//
// 2. Projections:
//   - TodoDetail and TodoListItem are the response shapes services return;
//     list items carry a link built from the configured base URL
//
// 3. Error handling:
//   - Store-level "not found" errors are translated to ErrTodoNotFound
//   - Unexpected failures are wrapped in TodoServiceError with the failing operation
//
// The service layer depends on domain entities and store interfaces, never on
// a specific infrastructure implementation.
package service
