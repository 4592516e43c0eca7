package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...any)
	Info(msg string)
	Infof(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Error(msg string)
	Errorf(format string, args ...any)
}

var _ Logger = (*Default)(nil)

// Default logs to the provided writer with the stdlib logger.
type Default struct {
	logger *log.Logger
}

func New() *Default {
	return NewWithOutput(os.Stdout)
}

func NewWithOutput(w io.Writer) *Default {
	return &Default{
		logger: log.New(w, "", log.Ldate|log.Ltime),
	}
}

func (l *Default) log(level, message string) {
	l.logger.Printf("[%s]: %s", level, message)
}

func (l *Default) Debug(msg string) {
	l.log("debug", msg)
}

func (l *Default) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

func (l *Default) Info(msg string) {
	l.log("info", msg)
}

func (l *Default) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Default) Warn(msg string) {
	l.log("warn", msg)
}

func (l *Default) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

func (l *Default) Error(msg string) {
	l.log("error", msg)
}

func (l *Default) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
