package logger

import (
	"sync"
	"sync/atomic"
)

//nolint:gochecknoglobals // global logger singleton
var (
	global   atomic.Value // stores Logger
	initOnce sync.Once
)

// SetGlobal replaces the global logger. Call it during startup, before loading configuration.
func SetGlobal(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	initOnce.Do(func() {})
	global.Store(l)
	return nil
}

// Named returns the global logger with a sub-scope name.
func Named(name string) Logger {
	return getGlobal().Named(name)
}

// Sync flushes the global logger.
func Sync() error {
	return getGlobal().Sync()
}

func getGlobal() Logger {
	initOnce.Do(func() {
		l, err := New(Config{Level: levelInfo, Encoding: encConsole})
		if err != nil {
			panic("[logger]: failed to initialize default logger: " + err.Error())
		}
		global.Store(l)
	})

	l, ok := global.Load().(Logger)
	if !ok {
		panic("[logger]: global contains invalid type")
	}
	return l
}
