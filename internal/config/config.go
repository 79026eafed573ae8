// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Updated via Makefile builds. Setting placeholder value here so that
// something resembling a version string will be provided for non-Makefile
// builds.
var version string = "x.y.z"

// ErrVersionRequested indicates that the user requested application version
// information.
var ErrVersionRequested = errors.New("version information requested")

// AppType represents the type of application that is being
// configured/initialized. Not all application types accept the same
// flags; each type is otherwise incompatible with the other.
type AppType struct {
	// Plugin represents the Nagios plugin entry point (cmd/x509validate).
	Plugin bool

	// Inspecter represents the standalone inspector entry point
	// (cmd/x509chaindump), used for one-off or isolated chain examination.
	Inspecter bool
}

// Config represents the application configuration as specified via
// command-line flags.
type Config struct {
	// Filename is the fully-qualified path to a file containing the
	// certificate chain to validate.
	Filename string

	// Server is the fully-qualified domain name or IP Address of the
	// system running a certificate-enabled service.
	Server string

	// DNSName is the fully-qualified hostname checked against the leaf
	// certificate. Defaults to Server when not specified.
	DNSName string

	// Port is the TCP port used by the certificate-enabled service.
	Port int

	// CAFile is the fully-qualified path to a PEM file of trust anchors.
	CAFile string

	// timeout is the number of seconds allowed before the connection
	// attempt to a remote certificate-enabled service is abandoned and an
	// error returned.
	timeout int

	// LoggingLevel is the supported logging level for this application.
	LoggingLevel string

	// AgeWarning is the number of days remaining before certificate
	// expiration when this application will flag the NotAfter certificate
	// field as a WARNING state.
	AgeWarning int

	// AgeCritical is the number of days remaining before certificate
	// expiration when this application will flag the NotAfter certificate
	// field as a CRITICAL state.
	AgeCritical int

	// Exhaustive selects accumulate-all-defects validation semantics
	// instead of fail-fast. Maps to chain.Checks.CheckExhaustive.
	Exhaustive bool

	// StrictOrdering requires the presented chain to already be in issuer
	// order. Maps to chain.Checks.CheckStrictOrdering.
	StrictOrdering bool

	// RequireLeafV3 requires the leaf certificate to be encoded as
	// X.509v3. Maps to chain.Checks.CheckLeafV3.
	RequireLeafV3 bool

	// EmitBranding controls whether "generated by" text is included at the
	// bottom of plugin output.
	EmitBranding bool

	// EmitCertText controls whether the certificate chain is printed to
	// stdout using an OpenSSL-inspired text format.
	EmitCertText bool

	// ShowVersion is a flag indicating whether the user opted to display
	// only the version string and then immediately exit the application.
	ShowVersion bool

	// Log is an embedded zerolog Logger initialized via config.New().
	Log zerolog.Logger
}

// Version emits application name, version and repo location.
func Version() string {
	return fmt.Sprintf("%s %s (%s)", myAppName, version, myAppURL)
}

// Branding accepts a message and returns a function that concatenates that
// message with version information. This function is intended to be
// called as a final step before application exit after any other output
// has already been emitted.
func Branding(msg string) func() string {
	return func() string {
		return strings.Join([]string{msg, Version()}, "")
	}
}

// New is a factory function that produces a new Config object based on
// user provided flag values. It is responsible for validating
// user-provided values and initializing the logging settings used by this
// application.
func New(appType AppType) (*Config, error) {
	var config Config

	config.handleFlagsConfig(appType)

	if config.ShowVersion {
		return nil, ErrVersionRequested
	}

	if config.DNSName == "" {
		config.DNSName = config.Server
	}

	if err := config.validate(appType); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := config.setupLogging(appType); err != nil {
		return nil, fmt.Errorf(
			"failed to set logging configuration: %w",
			err,
		)
	}

	return &config, nil
}
