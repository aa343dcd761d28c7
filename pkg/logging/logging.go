// Package logging configures the zap logger shared by the CLI.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger = zap.NewNop()

// Setup builds Logger and installs it as the zap global. When building fails
// Logger falls back to zap.NewExample and the error is returned.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	Logger, err = newConfig(debug, appName, appVersion).Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}

// newConfig picks the development config for debug runs and the production
// config otherwise. Both write to stderr; stdout carries the status line.
func newConfig(debug bool, appName, appVersion string) zap.Config {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		// Stack traces on every Error are noise for a one-shot CLI run.
		cfg.DisableStacktrace = true
	}

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}
	return cfg
}
