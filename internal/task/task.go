// Package task holds the client-side task model: the ordered collection
// the session renders from, plus the single-slot edit and suggestion state.
package task

// Task is the managed entity. The ID is assigned by the server and never
// changes; the local copy is always the last server-returned representation.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// EditSession captures the one task title being interactively revised.
// At most one session exists at a time; a nil *EditSession means viewing.
type EditSession struct {
	TaskID int
	Draft  string
}

// Suggestion is the one materialized suggestion result. A nil *Suggestion
// means nothing is displayed.
type Suggestion struct {
	// For is the task title the suggestion was requested for, or "Error"
	// for the failed-request placeholder.
	For  string
	Text string
}

// Collection is the ordered task sequence: server order after a load,
// append order for tasks created afterwards. At most one task per id.
// All mutations address tasks by id and never rely on aliasing.
type Collection struct {
	tasks []Task
}

// Replace swaps the entire collection for the given tasks.
func (c *Collection) Replace(tasks []Task) {
	c.tasks = make([]Task, len(tasks))
	copy(c.tasks, tasks)
}

// Append adds a task at the end of the collection.
func (c *Collection) Append(t Task) {
	c.tasks = append(c.tasks, t)
}

// ReplaceByID substitutes the task with the matching id. If no task has
// that id the call is a no-op; a response for a task deleted meanwhile
// must not resurrect it.
func (c *Collection) ReplaceByID(t Task) {
	for i := range c.tasks {
		if c.tasks[i].ID == t.ID {
			c.tasks[i] = t
			return
		}
	}
}

// RemoveByID deletes the task with the matching id, if present.
func (c *Collection) RemoveByID(id int) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
}

// ByID returns the task with the given id.
func (c *Collection) ByID(id int) (Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// All returns a copy of the collection in order.
func (c *Collection) All() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.tasks)
}
