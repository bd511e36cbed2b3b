package logger

import (
	"go.uber.org/zap"
)

var l = zap.NewNop()

// Init replaces the no-op logger. Call once from main before anything logs.
func Init(mode string) {
	var err error
	if mode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
}

func L() *zap.Logger { return l }

func Info(msg string, fields ...zap.Field)  { l.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { l.Fatal(msg, fields...) }

func Sync() { _ = l.Sync() }
