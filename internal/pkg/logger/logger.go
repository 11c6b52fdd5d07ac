package logger

import (
	"strings"

	"go.uber.org/zap"
)

// piiFields are structured-log keys whose values are masked before emission.
// Entity ids for boards/ideas/votes are not listed; user identity is.
var piiFields = map[string]struct{}{
	"name":     {},
	"username": {},
	"email":    {},
	"password": {},
	"token":    {},
	"api_key":  {},
	"secret":   {},
	"phone":    {},
	"address":  {},
	"user_id":  {},
	"new_name": {},
	"old_name": {},
}

const maskedValue = "[---MASKED---]"

type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, MaskPII(keysAndValues)...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, MaskPII(keysAndValues)...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, MaskPII(keysAndValues)...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, MaskPII(keysAndValues)...)
}
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Fatalw(msg, MaskPII(keysAndValues)...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	newSugared := l.SugaredLogger.With(MaskPII(keysAndValues)...)
	return &Logger{SugaredLogger: newSugared}
}

// MaskPII replaces the value of every PII-classified key in a key/value list.
// The input slice is left untouched.
func MaskPII(keysAndValues []interface{}) []interface{} {
	masked := make([]interface{}, len(keysAndValues))
	copy(masked, keysAndValues)
	for i := 0; i+1 < len(masked); i += 2 {
		key, ok := masked[i].(string)
		if !ok {
			continue
		}
		if _, hit := piiFields[strings.ToLower(key)]; hit {
			masked[i+1] = maskedValue
		}
	}
	return masked
}
