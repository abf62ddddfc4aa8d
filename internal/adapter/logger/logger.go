package logger

import (
	"github.com/jibli-app/jibli-backend/internal/adapter/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the application logger: colored console output in DEV,
// ISO8601-stamped JSON in PROD. A bad level string is unrecoverable at
// startup and yields nil.
func NewLogger(conf *config.App) *zap.Logger {
	lvl, err := zap.ParseAtomicLevel(conf.LogLevel)
	if err != nil {
		zap.L().Error("error parsing log level", zap.Error(err))
		return nil
	}

	var cfg zap.Config
	switch conf.Mode {
	case config.AppModeDevelop:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = lvl

	return zap.Must(cfg.Build())
}
