package tasks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/todo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Title string
	// Plain prints one task per line with no title, header or numbering.
	Plain bool
}

const defaultTitle = "To-Do List"

func renderView(tasks []domain.Task, opts RenderOptions, s styles) string {
	if opts.Plain {
		return renderPlain(tasks)
	}

	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("tasks: %d", len(tasks))),
	}

	if len(tasks) == 0 {
		lines = append(lines, s.empty.Render("No tasks yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.list.Render(renderList(tasks, s)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderList(tasks []domain.Task, s styles) string {
	width := len(strconv.Itoa(len(tasks)))
	rows := make([]string, 0, len(tasks))
	for i, task := range tasks {
		index := s.index.Render(fmt.Sprintf("%*d.", width, i+1))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, index, " ", s.task.Render(string(task))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderPlain(tasks []domain.Task) string {
	return strings.Join(domain.Strings(tasks), "\n")
}
