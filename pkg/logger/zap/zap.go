package zap

import (
	"github.com/mentora-labs/campus-map/pkg/logger/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger honoring the configured minimum level
// and timestamp layout.
func New(cfg config.Configuration) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	return zapConfig.Build()
}
