package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prepare returns our standard logger - configured zap logger for use by the
// program. Console output is split: info and below to stdout, errors to
// stderr, with colors when the stream is a terminal.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(os.Stdout) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoderLP := zapcore.NewConsoleEncoder(ec)

	ec = zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(os.Stderr) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoderHP := zapcore.NewConsoleEncoder(ec)

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	var coreHP, coreLP zapcore.Core
	switch conf.ConsoleLogger.Level {
	case "normal":
		coreLP = zapcore.NewCore(encoderLP, zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.InfoLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		coreHP = zapcore.NewCore(encoderHP, zapcore.Lock(os.Stderr), highPriority)
	case "debug":
		coreLP = zapcore.NewCore(encoderLP, zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.DebugLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		coreHP = zapcore.NewCore(encoderHP, zapcore.Lock(os.Stderr), highPriority)
	default:
		coreLP = zapcore.NewNopCore()
		coreHP = zapcore.NewNopCore()
	}

	return zap.New(zapcore.NewTee(coreHP, coreLP)).Named("csscade"), nil
}
