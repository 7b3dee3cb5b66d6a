package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// LevelSuccess sits between INFO and WARN so successful operation outcomes
// stay visible even when debug output is disabled.
const LevelSuccess = slog.Level(2)

var (
	level = new(slog.LevelVar)

	logger = slog.New(
		slog.NewTextHandler(
			os.Stdout, &slog.HandlerOptions{
				Level: level,
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if a.Key == slog.LevelKey {
						if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelSuccess {
							a.Value = slog.StringValue("SUCCESS")
						}
					}
					return a
				},
			},
		),
	)
)

func SetDebug(enable bool) {
	if enable {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

func Info(msg string) {
	logger.Info(msg)
}

func Infof(msg string, args ...any) {
	logger.Info(fmt.Sprintf(msg, args...))
}

func Success(msg string) {
	logger.Log(context.Background(), LevelSuccess, msg)
}

func Successf(msg string, args ...any) {
	logger.Log(context.Background(), LevelSuccess, fmt.Sprintf(msg, args...))
}

func Error(msg string, err error) {
	logger.Error(msg, "error", err)
}

func Fatalf(format string, v ...any) {
	logger.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

func Debug(msg string) {
	logger.Debug(msg)
}

func Debugf(msg string, args ...any) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug(fmt.Sprintf(msg, args...))
}
