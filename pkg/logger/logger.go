package logger

import "go.uber.org/zap"

// Logger is a thin wrapper around zap's sugared logger so callers don't
// depend on zap directly.
type Logger struct {
	log *zap.SugaredLogger
}

// New builds a logger for the given environment. Development gets the
// human-readable console encoder, everything else gets JSON.
func New(env string) (*Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{log: l.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{log: zap.NewNop().Sugar()}
}

func (l *Logger) Debug(message string, keysAndValues ...any) {
	l.log.Debugw(message, keysAndValues...)
}

func (l *Logger) Info(message string, keysAndValues ...any) {
	l.log.Infow(message, keysAndValues...)
}

func (l *Logger) Warn(message string, keysAndValues ...any) {
	l.log.Warnw(message, keysAndValues...)
}

func (l *Logger) Error(message string, keysAndValues ...any) {
	l.log.Errorw(message, keysAndValues...)
}

func (l *Logger) Fatal(message string, keysAndValues ...any) {
	l.log.Fatalw(message, keysAndValues...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.log.Sync()
}
