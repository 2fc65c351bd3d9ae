package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig selects the zap backend for the launcher logs
type ZapConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "console", "json"
	Output string // "stdout", "stderr", or a file path
	Caller bool
}

// DefaultZapConfig matches the defaults of the [log] config table
func DefaultZapConfig() ZapConfig {
	return ZapConfig{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// ZapBackend owns the zap logger and exposes it as LogFuncs
type ZapBackend struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	file   *os.File
}

// NewZapBackend builds the zap logger. File outputs are opened in append mode.
func NewZapBackend(config ZapConfig) (*ZapBackend, error) {
	level, err := zapLevel(config.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderConfig.LevelKey = "level"

	var encoder zapcore.Encoder
	switch config.Format {
	case "json":
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "console", "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("invalid log format: %s", config.Format)
	}

	backend := &ZapBackend{}

	var writeSyncer zapcore.WriteSyncer
	switch config.Output {
	case "stderr", "":
		writeSyncer = zapcore.Lock(zapcore.AddSync(os.Stderr))
	case "stdout":
		writeSyncer = zapcore.Lock(zapcore.AddSync(os.Stdout))
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", config.Output, err)
		}
		backend.file = file
		writeSyncer = zapcore.Lock(zapcore.AddSync(file))
	}

	opts := []zap.Option{}
	if config.Caller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(2))
	}

	backend.logger = zap.New(zapcore.NewCore(encoder, writeSyncer, level), opts...)
	backend.sugar = backend.logger.Sugar()
	return backend, nil
}

// LogFuncs adapts the sugared logger to the Logger function table
func (b *ZapBackend) LogFuncs() LogFuncs {
	return LogFuncs{
		Debugf: b.sugar.Debugf,
		Infof:  b.sugar.Infof,
		Warnf:  b.sugar.Warnf,
		Errorf: b.sugar.Errorf,
	}
}

// Logger returns a prefixed Logger writing to this backend
func (b *ZapBackend) Logger(prefix string) Logger {
	return NewLogger(prefix, b.LogFuncs())
}

// Close flushes buffered entries and closes the log file, if any
func (b *ZapBackend) Close() error {
	_ = b.logger.Sync()
	if b.file != nil {
		return b.file.Close()
	}
	return nil
}

// zap v1.20 has no zapcore.ParseLevel
func zapLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel, nil
	case "info", "":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}
