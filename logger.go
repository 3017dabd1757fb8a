package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostic logger. It writes to stderr by default so
// it never interleaves with the game text on stdout.
func newLogger(level, encoding, output string) (*zap.Logger, error) {
	atom := zap.NewAtomicLevel()
	lvl := strings.ToLower(level)
	if lvl == "" {
		lvl = "warn"
	}
	if err := atom.UnmarshalText([]byte(lvl)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, using warn: %v\n", level, err)
		atom.SetLevel(zap.WarnLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	enc := strings.ToLower(encoding)
	if enc != "console" && enc != "json" {
		enc = "console"
	}
	if output == "" {
		output = "stderr"
	}

	zapCfg := zap.Config{
		Level:             atom,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          enc,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
