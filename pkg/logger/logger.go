package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const FormatJSON = "json"

// Init builds the process logger and installs it as the zap global.
// "json" selects the production encoder, anything else the colored console one.
func Init(format string) (*zap.Logger, error) {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if format == FormatJSON {
		zapConfig = zap.NewProductionConfig()
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
