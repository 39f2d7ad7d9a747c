// Package logging builds the zap loggers used across srcbundle.
package logging

import (
	"go.uber.org/zap"
)

// New constructs a logger. Debug mode uses zap's development config
// (human-readable, DEBUG level); otherwise the production config is used.
// The application name and version are attached as initial fields.
func New(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewExample(), err
	}
	return logger, nil
}
