package logger

import (
	ilogger "github.com/dezh-tech/immortal/pkg/logger"
)

// Config is re-exported so callers only depend on this package.
type Config = ilogger.Config

func InitGlobalLogger(cfg *Config) {
	ilogger.InitGlobalLogger(cfg)
}

func Debug(msg string, keyVals ...any) {
	ilogger.Debug(msg, keyVals...)
}

func Info(msg string, keyVals ...any) {
	ilogger.Info(msg, keyVals...)
}

func Warn(msg string, keyVals ...any) {
	ilogger.Warn(msg, keyVals...)
}

func Error(msg string, keyVals ...any) {
	ilogger.Error(msg, keyVals...)
}
