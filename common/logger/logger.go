package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	conf "github.com/abcfe/ethutils/config"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// no-op until InitLogger, so library code can log unconditionally
var logger = zap.NewNop()

var encCfg = zapcore.EncoderConfig{
	TimeKey:        "date",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// InitLogger builds the logger from config.
// File output (JSON, rotated daily) only when LogInfo.Path is set.
// debug adds a console core on console at debug level. stdout is never used.
func InitLogger(cfg *conf.Config, debug bool, console io.Writer) error {
	var cores []zapcore.Core

	if cfg != nil && cfg.LogInfo.Path != "" {
		lPath := fmt.Sprintf("%s_%s.log", cfg.LogInfo.Path, "%Y-%m-%d")
		rotator, err := rotatelogs.New(
			lPath,
			rotatelogs.WithMaxAge(time.Duration(cfg.LogInfo.MaxAgeHour)*time.Hour),
			rotatelogs.WithRotationTime(time.Duration(cfg.LogInfo.RotateHour)*time.Hour))
		if err != nil {
			return err
		}

		level := zap.InfoLevel
		if debug {
			level = zap.DebugLevel
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level))
	}

	if debug {
		if console == nil {
			console = os.Stderr
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), zap.DebugLevel))
	}

	if len(cores) == 0 {
		logger = zap.NewNop()
		return nil
	}

	logger = zap.New(zapcore.NewTee(cores...))
	if cfg != nil && cfg.Common.ServiceName != "" {
		logger = logger.Named(cfg.Common.ServiceName)
	}

	logger.Debug("logging init")
	return nil
}

// Sync flushes buffered entries
func Sync() {
	_ = logger.Sync()
}

func join(ctx []interface{}) string {
	var b bytes.Buffer
	for _, str := range ctx {
		b.WriteString(fmt.Sprintf("%v", str))
	}
	return b.String()
}

func Debug(ctx ...interface{}) {
	logger.Debug("debug", zap.String("Debug", join(ctx)))
}

// Info logs at info level
func Info(ctx ...interface{}) {
	logger.Info("info", zap.String("Info", join(ctx)))
}

// Warn logs at warn level
func Warn(ctx ...interface{}) {
	logger.Warn("warn", zap.String("Warn", join(ctx)))
}

// Error logs at error level
func Error(ctx ...interface{}) {
	logger.Error("error", zap.String("Err", join(ctx)))
}

// Error handling
func HandleErr(err error) {
	if err != nil {
		Error(err)
	}
}
