// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chainwalk/x509validator/internal/logging"
)

// setupLogging is responsible for configuring logging settings for this
// application.
func (c *Config) setupLogging(appType AppType) error {

	var out *os.File
	var appTypeLabel string

	switch {
	case appType.Plugin:
		// Plugin logging is sent to stderr to avoid mixing in with stdout
		// output intended for the Nagios console.
		out = os.Stderr
		appTypeLabel = "plugin"
	default:
		out = os.Stdout
		appTypeLabel = "inspector"
	}

	consoleWriter := zerolog.ConsoleWriter{Out: out}
	c.Log = zerolog.New(consoleWriter).With().Timestamp().Caller().
		Str("version", Version()).
		Str("logging_level", c.LoggingLevel).
		Str("app_type", appTypeLabel).
		Str("filename", c.Filename).
		Str("server", c.Server).
		Int("port", c.Port).
		Str("cert_check_timeout", c.Timeout().String()).
		Int("age_warning", c.AgeWarning).
		Int("age_critical", c.AgeCritical).
		Logger()

	return logging.SetLoggingLevel(strings.ToLower(c.LoggingLevel))
}
