package logger

import (
	"errors"

	"github.com/code19m/errx"
	"go.uber.org/zap"
)

// Logger is the logging interface used across the module.
type Logger interface {
	Debug(msg any)
	Info(msg any)
	Warn(msg any)
	Error(msg any)
	// Fatal logs at fatal level and then calls os.Exit(1).
	Fatal(msg any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// Warnx logs err at warn level with its errx code, type and fields attached.
	Warnx(err error)
	// Errorx logs err at error level with its errx code, type, fields and details attached.
	Errorx(err error)
	// Fatalx is Errorx at fatal level; it calls os.Exit(1).
	Fatalx(err error)

	// With returns a logger that adds the key-value pairs to every entry.
	With(keysAndValues ...any) Logger
	// Named adds a sub-scope to the logger's name.
	Named(name string) Logger

	// Sync flushes buffered entries.
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
}

// New creates a Logger with the provided configuration.
func New(cfg Config) (Logger, error) {
	if cfg.Disable {
		return &logger{zap.NewNop().Sugar()}, nil
	}

	zapConfig, err := cfg.getZapConfig()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	zl, err := zapConfig.Build()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &logger{zl.Sugar()}, nil
}

// FromZap wraps an existing zap logger.
func FromZap(zl *zap.Logger) Logger {
	return &logger{zl.Sugar()}
}

func (l *logger) withErrx(err error) *zap.SugaredLogger {
	var e errx.ErrorX
	if !errors.As(err, &e) {
		return l.SugaredLogger
	}
	return l.SugaredLogger.With(
		"error_code", e.Code(),
		"error_type", e.Type().String(),
		"error_trace", e.Trace(),
		"error_fields", e.Fields(),
		"error_details", e.Details(),
	)
}

func (l *logger) Warnx(err error) {
	l.withErrx(err).Warn(err.Error())
}

func (l *logger) Errorx(err error) {
	l.withErrx(err).Error(err.Error())
}

func (l *logger) Fatalx(err error) {
	l.withErrx(err).Fatal(err.Error())
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{l.SugaredLogger.With(keysAndValues...)}
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

func (l *logger) Debug(msg any) { l.SugaredLogger.Debug(msg) }
func (l *logger) Info(msg any)  { l.SugaredLogger.Info(msg) }
func (l *logger) Warn(msg any)  { l.SugaredLogger.Warn(msg) }
func (l *logger) Error(msg any) { l.SugaredLogger.Error(msg) }
func (l *logger) Fatal(msg any) { l.SugaredLogger.Fatal(msg) }
