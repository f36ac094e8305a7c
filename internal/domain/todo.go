package domain

import "time"

// Todo is a named item with a completion state.
//
// CompletedAt is stamped whenever the item is written with Completed set to
// true. It is deliberately left alone when Completed goes back to false, so a
// reopened todo keeps the time it was last completed.
type Todo struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTodo builds an unsaved Todo. The ID stays zero until the store assigns one.
func NewTodo(name string, completed bool, now time.Time) *Todo {
	t := &Todo{
		Name:      name,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if completed {
		t.CompletedAt = timePtr(now)
	}
	return t
}

// Update replaces the name and completion flag in place and refreshes the
// timestamps. CompletedAt is reset to now on every update that marks the todo
// completed, including when it already was.
func (t *Todo) Update(name string, completed bool, now time.Time) {
	t.Name = name
	t.Completed = completed
	if completed {
		t.CompletedAt = timePtr(now)
	}
	t.UpdatedAt = now
}

// IsNew reports whether the todo has not been persisted yet.
func (t *Todo) IsNew() bool {
	return t.ID == 0
}

func timePtr(t time.Time) *time.Time {
	return &t
}
