// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"fmt"
	"strings"

	"github.com/chainwalk/x509validator/internal/logging"
)

// validate verifies all Config struct fields have been provided acceptable
// values.
func (c Config) validate(appType AppType) error {

	switch {
	case c.Filename == "" && c.Server == "":
		return fmt.Errorf("one of %q or %q flags must be specified", ServerFlagLong, FilenameFlagLong)
	case c.Filename != "" && c.Server != "":
		return fmt.Errorf("only one of %q or %q flags may be specified", ServerFlagLong, FilenameFlagLong)
	}

	if c.CAFile == "" {
		return fmt.Errorf("trust anchor file not provided via %q flag", CAFileFlagLong)
	}

	if c.Filename != "" && c.DNSName == "" {
		return fmt.Errorf("%q flag is required when evaluating a certificate file", DNSNameFlagLong)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid TCP port number %d", c.Port)
	}

	if c.Timeout() < 0 {
		return fmt.Errorf("invalid timeout value %d provided", c.timeout)
	}

	if c.AgeWarning < 0 {
		return fmt.Errorf("invalid cert expiration WARNING threshold number: %d", c.AgeWarning)
	}

	if c.AgeCritical < 0 {
		return fmt.Errorf("invalid cert expiration CRITICAL threshold number: %d", c.AgeCritical)
	}

	if c.AgeCritical > c.AgeWarning {
		return fmt.Errorf("critical threshold set higher than warning threshold")
	}

	requestedLoggingLevel := strings.ToLower(c.LoggingLevel)
	if _, ok := logging.LoggingLevels[requestedLoggingLevel]; !ok {
		return fmt.Errorf("invalid logging level %q", c.LoggingLevel)
	}

	return nil
}
