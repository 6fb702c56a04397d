package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var (
	mu       sync.Mutex
	minLevel = levelInfo
	std      = log.New(os.Stdout, "", log.Ldate|log.Ltime)
	errStd   = log.New(os.Stderr, "", log.Ldate|log.Ltime)
)

// Init routes log output to stdout/stderr and a size-rotated file under
// logDir. Safe to skip entirely; the package then logs to the console only.
func Init(logDir, level string) {
	mu.Lock()
	defer mu.Unlock()

	SetLevel(level)

	if logDir == "" {
		return
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Printf("failed to create log directory %s: %v", logDir, err)
		return
	}

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "starthobby.log"),
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	std = log.New(io.MultiWriter(os.Stdout, rotated), "", log.Ldate|log.Ltime)
	errStd = log.New(io.MultiWriter(os.Stderr, rotated), "", log.Ldate|log.Ltime)
	log.SetOutput(io.MultiWriter(os.Stdout, rotated))
}

// SetLevel adjusts the minimum emitted level ("debug", "info", "warn", "error").
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		minLevel = levelDebug
	case "warn", "warning":
		minLevel = levelWarn
	case "error":
		minLevel = levelError
	default:
		minLevel = levelInfo
	}
}

func callerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	name := runtime.FuncForPC(pc).Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

func output(level int, tag, format string, v ...interface{}) {
	if level < minLevel {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	entry := fmt.Sprintf("%s: [%s] %s", tag, callerInfo(), fmt.Sprintf(format, v...))
	if level >= levelError {
		errStd.Println(entry)
		return
	}
	std.Println(entry)
}

func Debug(format string, v ...interface{}) { output(levelDebug, "DEBUG", format, v...) }
func Info(format string, v ...interface{})  { output(levelInfo, "INFO", format, v...) }
func Warn(format string, v ...interface{})  { output(levelWarn, "WARNING", format, v...) }
func Error(format string, v ...interface{}) { output(levelError, "ERROR", format, v...) }
