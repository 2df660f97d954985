package httpserver

import (
	"io"
	"log/slog"
)

func slogToBuffer(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
