package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/go-chi/httplog/v3"
)

const version = "v1.0.0"

// New returns a JSON logger using the ECS field names of the request logger,
// so application and access logs share one schema
func New(app, env string, level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, app, env, level)
}

func NewWithWriter(w io.Writer, app, env string, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app),
		slog.String("version", version),
		slog.String("env", env),
	)
}
