/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package logger provides the structured leveled logger used across the
// BPMN authoring engine and its transports.
package logger

import (
	"io"
	"os"
	"sync"
	"time"
)

// Level represents logging severity
// Уровень серьезности логирования
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

// String returns the textual name of the level
// Возвращает текстовое имя уровня
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level, defaulting to INFO
// Парсит строку в Level, по умолчанию INFO
func ParseLevel(level string) Level {
	switch level {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// Field is a single structured logging attribute
// Единичный структурированный атрибут лога
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field { return Field{Key: key, Value: value} }
func Int(key string, value int) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Entry is a single emitted log record
// Единичная выпущенная запись лога
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Fields    []Field
}

// Logger is the structured leveled logger
// Структурированный логгер с уровнями
type Logger struct {
	level     Level
	formatter Formatter
	writer    io.Writer
	mu        sync.Mutex
}

// Option configures a Logger at construction time
type Option func(*Logger)

// WithWriter overrides the destination writer (default os.Stdout)
func WithWriter(w io.Writer) Option {
	return func(l *Logger) { l.writer = w }
}

// WithFormat selects "json" or "text" output (default "text")
func WithFormat(format string) Option {
	return func(l *Logger) { l.formatter = NewFormatter(format) }
}

// New creates a logger at the given level
// Создает логгер с заданным уровнем
func New(level Level, opts ...Option) *Logger {
	l := &Logger{
		level:     level,
		formatter: NewFormatter("text"),
		writer:    os.Stdout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log(DEBUG, msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log(INFO, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log(WARN, msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.log(ERROR, msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.log(FATAL, msg, fields...)
	os.Exit(1)
}

func (l *Logger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
		Fields:    fields,
	}

	formatted := l.formatter.Format(entry)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Write([]byte(formatted + "\n"))
}

// SetLevel changes the minimum level logged
// Меняет минимальный логируемый уровень
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// With returns a ComponentLogger that prefixes every entry with component.
func (l *Logger) With(component string) ComponentLogger {
	return &componentLogger{parent: l, component: component}
}

// ComponentLogger scopes log entries to a named component, mirroring the
// way the engine's sub-packages (flatten, bpmnxml, edit, session) each
// report under their own name without re-deriving the field every call.
type ComponentLogger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

type componentLogger struct {
	parent    *Logger
	component string
}

func (c *componentLogger) Debug(msg string, fields ...Field) {
	c.parent.Debug(msg, append([]Field{String("component", c.component)}, fields...)...)
}

func (c *componentLogger) Info(msg string, fields ...Field) {
	c.parent.Info(msg, append([]Field{String("component", c.component)}, fields...)...)
}

func (c *componentLogger) Warn(msg string, fields ...Field) {
	c.parent.Warn(msg, append([]Field{String("component", c.component)}, fields...)...)
}

func (c *componentLogger) Error(msg string, fields ...Field) {
	c.parent.Error(msg, append([]Field{String("component", c.component)}, fields...)...)
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Init sets the process-wide default logger, once.
// Устанавливает глобальный логгер по умолчанию, один раз.
func Init(level Level, opts ...Option) {
	once.Do(func() {
		globalLogger = New(level, opts...)
	})
}

// Global returns the process-wide logger, creating an INFO-level default
// if Init was never called.
func Global() *Logger {
	if globalLogger == nil {
		return New(INFO)
	}
	return globalLogger
}
