package application

type AddTaskCommand struct {
	Content string
}
