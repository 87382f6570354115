package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02T15-04-05.000"

type Logger struct {
	appEnv  string
	appName string
	l       *zap.Logger
}

type Options struct {
	AppName string
	AppEnv  string
	Level   string
	// Format is "json" (default) or "console".
	Format string
	// Hooks always receive JSON lines, whatever Format is.
	Hooks []io.Writer
}

// NewZapLogger returns a debug level JSON logger writing to writers, stdout when none are given.
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	l, _ := New(Options{AppName: appName, Level: "debug"}, writers...)
	return l
}

// New returns a logger filtered at opts.Level, encoding in opts.Format.
func New(opts Options, writers ...io.Writer) (*Logger, error) {
	level := zapcore.DebugLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = timeEncoder(timeLayout, time.UTC)
	cfg.TimeKey = "timestamp"

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", "json":
		encoder = zapcore.NewJSONEncoder(cfg)
	case "console":
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var multiWriters []zapcore.WriteSyncer
	if len(writers) == 0 {
		multiWriters = append(multiWriters, os.Stdout)
	} else {
		for _, writer := range writers {
			multiWriters = append(multiWriters, zapcore.AddSync(writer))
		}
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(multiWriters...), level),
	}

	for _, hook := range opts.Hooks {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(hook), level))
	}

	return &Logger{
		appEnv:  opts.AppEnv,
		appName: opts.AppName,
		l:       zap.New(zapcore.NewTee(cores...)),
	}, nil
}

func (l *Logger) Stop() (err error) {
	if err = l.l.Sync(); err != nil {
		return
	}
	return
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(fieldsOf(fields)...)).Error(
		err.Error(),
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("error", err.Error()),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(fieldsOf(fields)...)).Info(msg, l.callerFields(file, line, funcName)...)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(fieldsOf(fields)...)).Warn(msg, l.callerFields(file, line, funcName)...)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(fieldsOf(fields)...)).Debug(msg, l.callerFields(file, line, funcName)...)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(fieldsOf(fields)...)).Fatal(msg, l.callerFields(file, line, funcName)...)
}

func (l *Logger) callerFields(file string, line int, funcName string) []zap.Field {
	return []zap.Field{
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.Any("caller_file", file),
		zap.Any("caller_line", line),
		zap.Any("caller_func", funcName),
	}
}

func fieldsOf(fields []map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	return mapToZapFields(fields[0])
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

func getRuntimeParams() (file string, line int, funcName string) {
	var ok bool
	var pc uintptr
	pc, file, line, ok = runtime.Caller(2)
	if !ok {
		file = "not_defined"
		line = 0
		funcName = "not_defined"
	} else {
		funcName = runtime.FuncForPC(pc).Name()
	}
	return

}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
