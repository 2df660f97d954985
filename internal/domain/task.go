package domain

// Task is one free-text to-do item. Tasks carry no identifier or metadata;
// two tasks with the same text are distinct entries.
type Task string

// NewTask rejects empty content. Whitespace is kept as-is; trimming is left
// to the clients that collect the text.
func NewTask(content string) (Task, error) {
	if content == "" {
		return "", ErrTaskContentRequired
	}

	return Task(content), nil
}

func (t Task) String() string {
	return string(t)
}

// Strings converts tasks to their plain text form, never returning nil.
func Strings(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, string(task))
	}

	return out
}

// FromStrings is the inverse of Strings.
func FromStrings(values []string) []Task {
	out := make([]Task, 0, len(values))
	for _, value := range values {
		out = append(out, Task(value))
	}

	return out
}
