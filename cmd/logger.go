package cmd

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-containers/internal/build"
)

// newLogger builds the zap logger described by the log-level and log-format
// settings. Logs go to stderr so that command output stays on stdout.
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(v.GetString(logLevelFlag))
	if err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", v.GetString(logLevelFlag), err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	format := v.GetString(logFormatFlag)
	switch format {
	case "json":
	case "text":
		cfg.Encoding = "console"
		cfg.DisableCaller = true
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if format == "json" {
		log = log.With(zap.String("build.version", build.Version))
	}
	return log, nil
}
