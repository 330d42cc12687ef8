package logger

import (
	"fmt"
	"log/slog"
)

// Logger is a thin wrapper over slog that carries the package/function
// breadcrumbs as structured attributes and can return the error it logs,
// so call sites read as `return log.Err("...", err)`.
type Logger struct {
	pkg      string
	file     string
	function string
}

func New(pkg string) Logger {
	return Logger{pkg: pkg}
}

func (l Logger) File(file string) Logger {
	l.file = file
	return l
}

func (l Logger) Function(function string) Logger {
	l.function = function
	return l
}

func (l Logger) attrs(args ...any) []any {
	out := []any{"pkg", l.pkg}
	if l.file != "" {
		out = append(out, "file", l.file)
	}
	if l.function != "" {
		out = append(out, "function", l.function)
	}
	return append(out, args...)
}

func (l Logger) Info(msg string, args ...any) {
	slog.Info(msg, l.attrs(args...)...)
}

func (l Logger) Warn(msg string, args ...any) {
	slog.Warn(msg, l.attrs(args...)...)
}

func (l Logger) Debug(msg string, args ...any) {
	slog.Debug(msg, l.attrs(args...)...)
}

// Err logs the error and returns it wrapped with the message.
func (l Logger) Err(msg string, err error, args ...any) error {
	slog.Error(msg, l.attrs(append(args, "error", err)...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Er logs the error without returning one.
func (l Logger) Er(msg string, err error, args ...any) {
	slog.Error(msg, l.attrs(append(args, "error", err)...)...)
}

// Error logs the message and returns it as a new error.
func (l Logger) Error(msg string, args ...any) error {
	slog.Error(msg, l.attrs(args...)...)
	return fmt.Errorf("%s", msg)
}

// ErrMsg is Error without the structured args.
func (l Logger) ErrMsg(msg string) error {
	slog.Error(msg, l.attrs()...)
	return fmt.Errorf("%s", msg)
}

func (l Logger) ErMsg(msg string) {
	slog.Error(msg, l.attrs()...)
}
