package logging

import (
	"context"
	"maps"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger to the library's Logger interface, for
// applications that already run zap and want the library's records in the
// same stream.
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
	fields Fields
}

// NewZapLogger wraps an existing zap logger. Level filtering stays under the
// caller's control; SetLevel on the returned logger is a no-op.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{
		logger: logger,
		level:  zap.NewAtomicLevelAt(zapcore.DebugLevel),
		fields: make(Fields),
	}
}

// NewZapDevelopmentLogger builds a zap-backed logger with a console encoder
// on stderr and an adjustable level, suitable for interactive use.
func NewZapDevelopmentLogger() *ZapLogger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return &ZapLogger{
		logger: zap.New(core),
		level:  level,
		fields: make(Fields),
	}
}

// NewZapProductionLogger builds a zap-backed logger with a JSON encoder on
// stdout and an adjustable level.
func NewZapProductionLogger() *ZapLogger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		level,
	)

	return &ZapLogger{
		logger: zap.New(core),
		level:  level,
		fields: make(Fields),
	}
}

// zapFields merges preset and call-site fields into zap fields, with the
// error (if any) first. Keys are sorted so output is deterministic.
func (z *ZapLogger) zapFields(err error, fields []Fields) []zapcore.Field {
	merged := make(Fields)
	maps.Copy(merged, z.fields)
	for _, f := range fields {
		maps.Copy(merged, f)
	}

	out := make([]zapcore.Field, 0, len(merged)+1)
	if err != nil {
		out = append(out, zap.Error(err))
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		out = append(out, zap.Any(key, merged[key]))
	}
	return out
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	z.logger.Debug(msg, z.zapFields(nil, fields)...)
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	z.logger.Info(msg, z.zapFields(nil, fields)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	z.logger.Warn(msg, z.zapFields(nil, fields)...)
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	z.logger.Error(msg, z.zapFields(err, fields)...)
}

func (z *ZapLogger) Fatal(err error, msg string, fields ...Fields) {
	z.logger.Fatal(msg, z.zapFields(err, fields)...)
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	newFields := make(Fields)
	maps.Copy(newFields, z.fields)
	maps.Copy(newFields, fields)

	return &ZapLogger{
		logger: z.logger,
		level:  z.level,
		fields: newFields,
	}
}

func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := FieldsFromContext(ctx); ok {
		return z.WithFields(fields)
	}
	return z
}

// SetLevel adjusts the minimum level for loggers built by the New*Logger
// constructors in this package. Wrapped external loggers keep their own level.
func (z *ZapLogger) SetLevel(level Level) {
	switch level {
	case DebugLevel:
		z.level.SetLevel(zapcore.DebugLevel)
	case InfoLevel:
		z.level.SetLevel(zapcore.InfoLevel)
	case WarnLevel:
		z.level.SetLevel(zapcore.WarnLevel)
	case ErrorLevel:
		z.level.SetLevel(zapcore.ErrorLevel)
	case FatalLevel:
		z.level.SetLevel(zapcore.FatalLevel)
	}
}

// Sync flushes buffered records on the underlying zap logger.
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}
