package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. It is a no-op until Initialize runs, so
// tests and tooling can log freely.
var Log = zap.NewNop()

// Options controls where and how much the server logs
type Options struct {
	Level      string
	File       string
	Console    io.Writer
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func (o Options) withDefaults() Options {
	if o.File == "" {
		o.File = "framez.log"
	}
	if o.Console == nil {
		o.Console = os.Stdout
	}
	if o.MaxSizeMB == 0 {
		o.MaxSizeMB = 100
	}
	if o.MaxBackups == 0 {
		o.MaxBackups = 5
	}
	if o.MaxAgeDays == 0 {
		o.MaxAgeDays = 7
	}
	return o
}

// New builds a logger that writes readable lines to the console and JSON
// lines to a rotated file
func New(opts Options) *zap.Logger {
	opts = opts.withDefaults()
	level := parseLogLevel(opts.Level)

	rotated := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}

	fileConfig := zap.NewProductionEncoderConfig()
	fileConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(opts.Console), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileConfig), zapcore.AddSync(rotated), level),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Initialize replaces Log with a console + rotated file logger
func Initialize(level, file string) error {
	Log = New(Options{Level: level, File: file})
	Log.Info("Logger initialized", zap.String("level", parseLogLevel(level).String()), zap.String("file", file))
	return nil
}

// Close flushes buffered entries
func Close() error {
	return Log.Sync()
}

// parseLogLevel accepts zap level names plus "warning"; anything else is info
func parseLogLevel(s string) zapcore.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return zapcore.WarnLevel
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil || level > zapcore.ErrorLevel {
		return zapcore.InfoLevel
	}
	return level
}

// WarnWithFields logs msg at warn level with err attached when non-nil
func WarnWithFields(msg string, err error, fields ...zap.Field) {
	Log.Warn(msg, withError(err, fields)...)
}

func ErrorWithFields(msg string, err error, fields ...zap.Field) {
	Log.Error(msg, withError(err, fields)...)
}

// FatalWithFields logs and exits the process
func FatalWithFields(msg string, err error, fields ...zap.Field) {
	Log.Fatal(msg, withError(err, fields)...)
}

func withError(err error, fields []zap.Field) []zap.Field {
	if err == nil {
		return fields
	}
	return append(fields, zap.Error(err))
}

func WithRequestID(requestID string) zap.Field { return zap.String("request_id", requestID) }
func WithUserID(userID string) zap.Field       { return zap.String("user_id", userID) }
func WithPostID(postID string) zap.Field       { return zap.String("post_id", postID) }
func WithIP(ip string) zap.Field               { return zap.String("ip", ip) }
func WithStatus(status int) zap.Field          { return zap.Int("status", status) }
