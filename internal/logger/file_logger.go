package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// Logger is a file logger for signal engine runs
type Logger struct {
	symbol   string
	interval string
	logFile  *os.File
	logger   *log.Logger
	mu       sync.Mutex
	logPath  string
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARN"
	LogLevelError   LogLevel = "ERROR"
	LogLevelSignal  LogLevel = "SIGNAL"
)

// NewLogger creates a new file logger for the specified symbol and interval
func NewLogger(symbol, interval string) (*Logger, error) {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_%s_%s.log", symbol, interval, timestamp)
	logPath := filepath.Join(logDir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := &Logger{
		symbol:   symbol,
		interval: interval,
		logFile:  file,
		logger:   log.New(file, "", 0),
		logPath:  logPath,
	}

	l.writeSessionHeader()

	return l, nil
}

// writeSessionHeader writes a session start header to the log
func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🚀 SIGNAL ENGINE SESSION STARTED
================================================================================
Symbol: %s | Interval: %s
Started: %s
================================================================================`,
		l.symbol, l.interval, time.Now().Format("2006-01-02 15:04:05"))

	l.logger.Print(header)
}

// Log writes a formatted log entry with the specified level
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s", timestamp, level, message)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// LogError logs an error with context
func (l *Logger) LogError(context string, err error) {
	l.Error("%s: %v", context, err)
}

// LogSignalEvent logs one position-change event
func (l *Logger) LogSignalEvent(rec types.SignalRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")

	eventLog := fmt.Sprintf(`
[%s] [SIGNAL] ==================== %s ====================
⏰ Bar Time: %s
📈 Supertrend: %.4f | Direction: %s
🔄 Position Change: %+d
=============================================================`,
		timestamp, rec.Signal, rec.Timestamp.Format("2006-01-02 15:04"),
		rec.Supertrend, rec.Direction, rec.PositionChange)

	l.logger.Println(eventLog)
}

// LogRunSummary logs the outcome of one engine invocation
func (l *Logger) LogRunSummary(bars, events int, elapsed time.Duration) {
	l.Info("run complete: %d bars, %d signal events, took %s", bars, events, elapsed)
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return nil
	}

	l.logger.Printf("[%s] [%s] session closed", time.Now().Format("2006-01-02 15:04:05"), LogLevelInfo)
	err := l.logFile.Close()
	l.logFile = nil
	return err
}

// GetLogPath returns the path of the current log file
func (l *Logger) GetLogPath() string {
	return l.logPath
}
