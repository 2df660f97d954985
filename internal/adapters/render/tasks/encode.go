package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/todo/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatText, FormatJSON, FormatTOML:
		return Format(value), nil
	default:
		return "", fmt.Errorf("%w %q (want text, json or toml)", ErrUnsupportedFormat, value)
	}
}

const currentSchemaVersion = 1

type listSchema struct {
	Version int      `toml:"version"`
	Tasks   []string `toml:"tasks"`
}

// Encode writes tasks in a machine readable format. JSON matches the body of
// GET /tasks.
func Encode(w io.Writer, tasks []domain.Task, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(domain.Strings(tasks))
	case FormatTOML:
		return toml.NewEncoder(w).Encode(listSchema{
			Version: currentSchemaVersion,
			Tasks:   domain.Strings(tasks),
		})
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}
