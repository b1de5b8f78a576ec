package components

import "time"

// Status is the completion state of a todo.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Label categorizes a todo.
type Label string

const (
	LabelWork     Label = "work"
	LabelPersonal Label = "personal"
	LabelUrgent   Label = "urgent"
)

// Todo is one item in the list.
type Todo struct {
	ID        string
	Title     string
	Status    Status
	Labels    []Label
	CreatedAt time.Time
}

// Done reports whether the todo is completed.
func (t *Todo) Done() bool {
	return t.Status == StatusCompleted
}

// TodoStore is what the views need from storage.
type TodoStore interface {
	Get(id string) *Todo
	List() []*Todo
	Toggle(id string) bool
}
