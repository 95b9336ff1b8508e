// Package logger provides the structured logger used by configuration loading.
package logger

import (
	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	timeKey    = "time"

	encConsole = "console"
	levelInfo  = "info"
)

// Config defines configuration options for the logger.
type Config struct {
	// Level specifies the minimum log level to emit.
	// Valid values are: "debug", "info", "warn", "error". Default is "info".
	Level string `yaml:"level" validate:"oneof=debug info warn error" default:"info"`

	// Encoding specifies the log format.
	// Valid values are: "json", "console". Default is "console".
	Encoding string `yaml:"encoding" validate:"oneof=json console" default:"console"`

	// Disable creates a no-op logger. Useful in tests.
	Disable bool `yaml:"disable" default:"false"`
}

func (c Config) getZapConfig() (*zap.Config, error) {
	zapLevel := zap.NewAtomicLevel()

	err := zapLevel.UnmarshalText([]byte(c.Level))
	if err != nil {
		return nil, errx.Wrap(err)
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if c.Encoding == encConsole {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return &zap.Config{
		Level:            zapLevel,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		Encoding:         c.Encoding,
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     messageKey,
			LevelKey:       levelKey,
			NameKey:        nameKey,
			TimeKey:        timeKey,
			EncodeLevel:    encodeLevel,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		},
	}, nil
}
